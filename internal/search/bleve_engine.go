package search

import (
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"
)

type bleveEngine struct {
	idx bleve.Index
	// ids of currently indexed documents, so a reindex can clear stale
	// entries from the previous snapshot.
	ids []string
}

// NewBleveEngine creates an empty in-memory index. Nothing is persisted; the
// index lives and dies with the session.
func NewBleveEngine() (Searcher, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}
	return &bleveEngine{idx: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	dm := bleve.NewDocumentMapping()

	name := bleve.NewTextFieldMapping()
	name.Analyzer = standard.Name
	name.Store = true
	name.IncludeTermVectors = true

	platform := bleve.NewTextFieldMapping()
	platform.Analyzer = standard.Name
	platform.Store = true

	status := bleve.NewTextFieldMapping()
	status.Analyzer = standard.Name
	status.Store = true

	dm.AddFieldMappingsAt("name", name)
	dm.AddFieldMappingsAt("platform", platform)
	dm.AddFieldMappingsAt("status", status)

	im.DefaultMapping = dm
	return im
}

func (b *bleveEngine) Reindex(docs []Document) error {
	batch := b.idx.NewBatch()
	for _, id := range b.ids {
		batch.Delete(id)
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		_ = batch.Index(d.ID, map[string]any{
			"name":     d.Name,
			"platform": d.Platform,
			"status":   d.Status,
		})
		ids = append(ids, d.ID)
	}
	if err := b.idx.Batch(batch); err != nil {
		return err
	}
	b.ids = ids
	return nil
}

func (b *bleveEngine) Search(query string, limit int) ([]*Result, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return []*Result{}, nil
	}

	tokens := tokenize(query)
	var qs []bleveQuery.Query
	for _, tok := range tokens {
		// name^4 with prefix support so "week" hits "Weekly Contest 400"
		qn := bleve.NewMatchQuery(tok)
		qn.SetField("name")
		qn.SetBoost(4.0)
		qs = append(qs, qn)
		qnp := bleve.NewPrefixQuery(strings.ToLower(tok))
		qnp.SetField("name")
		qnp.SetBoost(3.5)
		qs = append(qs, qnp)
		// platform^2
		qp := bleve.NewMatchQuery(tok)
		qp.SetField("platform")
		qp.SetBoost(2.0)
		qs = append(qs, qp)
		// status^1
		qst := bleve.NewMatchQuery(tok)
		qst.SetField("status")
		qst.SetBoost(1.0)
		qs = append(qs, qst)
	}
	if len(qs) == 0 {
		return []*Result{}, nil
	}

	q := bleve.NewDisjunctionQuery(qs...)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := b.idx.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]*Result, 0, len(res.Hits))
	for _, h := range res.Hits {
		out = append(out, &Result{ID: h.ID, Score: h.Score})
	}
	return out, nil
}

func (b *bleveEngine) DocCount() (int, error) {
	n, err := b.idx.DocCount()
	return int(n), err
}

func tokenize(query string) []string {
	fields := strings.Fields(query)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
