package app

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/philippgille/chromem-go"
)

const collectionName = "sentences"

// IndexedSentence - предложение вместе с местом, откуда оно взято
type IndexedSentence struct {
	Text     string
	Source   string // путь файла относительно корня корпуса
	DocID    string // атрибут id у <doc>
	DocIndex int    // номер <doc> в файле
	Position int    // номер предложения в документе
}

// SentenceIndex - векторный индекс предложений в chromem, сохраняется в файл после запуска
type SentenceIndex struct {
	db   *chromem.DB
	coll *chromem.Collection
	path string
}

func newSentenceIndex(path string, embeddingFunc chromem.EmbeddingFunc) (*SentenceIndex, error) {
	db := chromem.NewDB()
	coll, err := db.CreateCollection(collectionName, map[string]string{}, embeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	return &SentenceIndex{db: db, coll: coll, path: path}, nil
}

// Add эмбеддит и добавляет предложения одного файла
func (ix *SentenceIndex) Add(ctx context.Context, sentences []IndexedSentence) error {
	docs := make([]chromem.Document, 0, len(sentences))
	for _, s := range sentences {
		docs = append(docs, chromem.Document{
			ID:      sentenceID(s),
			Content: s.Text,
			Metadata: map[string]string{
				"source":   s.Source,
				"doc_id":   s.DocID,
				"position": strconv.Itoa(s.Position),
			},
		})
	}
	return ix.coll.AddDocuments(ctx, docs, runtime.NumCPU())
}

func (ix *SentenceIndex) Count() int {
	return ix.coll.Count()
}

// Save экспортирует коллекцию; файл с суффиксом .gz сжимается
func (ix *SentenceIndex) Save() error {
	if err := os.MkdirAll(filepath.Dir(ix.path), 0o755); err != nil {
		return err
	}
	return ix.db.ExportToFile(ix.path, isCompressed(ix.path), "", collectionName)
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// sentenceID - стабильный id: повторный запуск по тому же корпусу даёт те же id
func sentenceID(s IndexedSentence) string {
	key := fmt.Sprintf("%s#%d#%d", s.Source, s.DocIndex, s.Position)
	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", hash[:8])
}
