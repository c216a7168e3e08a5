package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/philippgille/chromem-go"
)

// SearchResult - результат векторного поиска по индексу предложений
type SearchResult struct {
	Content    string
	Source     string
	DocID      string
	Position   int
	Similarity float32
}

// Query ищет в сохранённом индексе предложения, похожие на queryText
func (a *App) Query(ctx context.Context, queryText string) ([]SearchResult, error) {
	db := chromem.NewDB()
	if err := db.ImportFromFile(a.cfg.IndexFile, "", collectionName); err != nil {
		return nil, fmt.Errorf("%w: failed to import index %s: %w", ErrIO, a.cfg.IndexFile, err)
	}

	coll := db.GetCollection(collectionName, a.embeddingFunc)
	if coll == nil {
		return nil, fmt.Errorf("collection '%s' not found in %s", collectionName, a.cfg.IndexFile)
	}

	// chromem не даёт запросить больше документов, чем есть в коллекции
	n := a.cfg.TopK
	if count := coll.Count(); count < n {
		n = count
	}
	if n == 0 {
		return nil, nil
	}

	results, err := coll.Query(ctx, queryText, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	// Фильтруем по similarity и преобразуем
	var searchResults []SearchResult
	for _, r := range results {
		if r.Similarity < a.cfg.MinSimilarity {
			continue
		}

		pos, _ := strconv.Atoi(r.Metadata["position"])
		searchResults = append(searchResults, SearchResult{
			Content:    r.Content,
			Source:     r.Metadata["source"],
			DocID:      r.Metadata["doc_id"],
			Position:   pos,
			Similarity: r.Similarity,
		})
	}

	return searchResults, nil
}
