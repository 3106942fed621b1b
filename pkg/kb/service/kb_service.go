package service

import "kaio/entities"

type KBService interface {
	UpsertDocument(title, tags, text, sourceURL string) (*entities.KBDocument, int, error)
	Search(query string, k int) ([]entities.KBChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.KBDocument, error)
	// Context joins the top search hits into one prompt-ready block.
	Context(query string, maxLen int) string
}
