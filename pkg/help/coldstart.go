package help

const ColdstartYAML = `# sentrank Quick Start

what_it_does: "Extractive summaries: sentences are linked by Jaccard similarity of their stems and ranked with PageRank"

commands:
  top_stems: |
    sentrank stems --n 10 article.txt

  similarity: |
    sentrank similarity --stems "thi,sentenc,anoth" "This is a sentence." "This is another sentence."

  matrix: |
    sentrank matrix --stems "thi,sentenc,anoth" --threshold 0.5 article.txt

  pagerank: |
    sentrank pagerank --stems "thi,sentenc,anoth" --damping 0.85 --epsilon 0.01 article.txt

  summarise_text: |
    sentrank summarise --n 3 --top-stems 10 article.txt
    cat article.txt | sentrank summarise --stems "sentenc,a,anoth" -

  summarise_html: |
    sentrank summarise --html --url "https://example.org/post" page.html
    sentrank summarise --fetch --url "https://example.org/post"

  ohsumed: |
    sentrank ohsumed import --corpus ohsumed.87 --queries query.ohsu.1-63 --qrels qrels.ohsu.batch.87
    sentrank ohsumed show 87049087
    sentrank ohsumed query OHSU1
    sentrank ohsumed summarise --n 2 87049087
    sentrank ohsumed stems --n 20
    sentrank ohsumed stems --n 20 --format list

parameters:
  n: "Sentences in the summary (default 3)"
  threshold: "Minimum Jaccard similarity for a link (default 0.5)"
  damping: "PageRank damping factor d (default 0.85)"
  epsilon: "Stop when the L1 change of the rank vector is below this (default 0.01)"
  max_iterations: "Hard cap on power iterations (default 100)"
  top_stems: "Vocabulary size when --stems is not given (default 10)"

configuration:
  precedence: "flags > environment > --config YAML > defaults"
  env: ["SENTRANK_N", "SENTRANK_THRESHOLD", "SENTRANK_DAMPING", "SENTRANK_EPSILON", "SENTRANK_MAX_ITERATIONS", "SENTRANK_TOP_STEMS", "SENTRANK_DB"]
  dotenv: ".env in the working directory is loaded at startup"

output:
  - "Results are YAML on stdout"
  - "Logs are JSON on stderr (--quiet for errors only, --verbose for debug)"

invariants:
  - "Summary sentences appear in their original order"
  - "Each PageRank result sums to 1"
  - "Every column of the transition matrix sums to 1"
`
