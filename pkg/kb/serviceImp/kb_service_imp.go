package serviceImp

import (
	"sort"
	"strings"

	"kaio/entities"
	"kaio/pkg/kb/repository"
	"kaio/pkg/kb/service"
)

type Svc struct{ r repository.KBRepository }

func New(r repository.KBRepository) service.KBService { return &Svc{r: r} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.KBDocument, int, error) {
	d := &entities.KBDocument{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	rows := make([]entities.KBChunk, len(chs))
	for i := range chs {
		rows[i] = entities.KBChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

// Search scores chunks by how many query terms they contain.
func (s *Svc) Search(query string, k int) ([]entities.KBChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	terms := strings.Fields(strings.ToLower(q))
	type scored struct {
		ch entities.KBChunk
		sc int
	}
	scoredList := make([]scored, 0, len(chunks))
	for _, ch := range chunks {
		low := strings.ToLower(ch.Text)
		score := 0
		for _, term := range terms {
			if strings.Contains(low, term) {
				score++
			}
		}
		if score > 0 {
			scoredList = append(scoredList, scored{ch: ch, sc: score})
		}
	}
	if len(scoredList) == 0 {
		return nil, nil
	}
	sort.SliceStable(scoredList, func(i, j int) bool { return scoredList[i].sc > scoredList[j].sc })

	if k > len(scoredList) {
		k = len(scoredList)
	}
	out := make([]entities.KBChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, scoredList[i].ch)
	}
	return out, nil
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.KBDocument, error) {
	return s.r.DocsByIDs(ids)
}

func (s *Svc) Context(query string, maxLen int) string {
	snips, err := s.Search(query, 6)
	if err != nil {
		// generation works without notes
		return ""
	}
	var ctx string
	for _, ch := range snips {
		if len(ctx) > maxLen {
			break
		}
		ctx += "\n---\n" + ch.Text
	}
	return ctx
}
