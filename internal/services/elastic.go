package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"chaicraft_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const productIndex = "products"

// Search wraps the Elasticsearch client for catalog indexing and search.
type Search struct {
	client *elasticsearch.Client
}

func NewSearch(client *elasticsearch.Client) *Search {
	return &Search{client: client}
}

func (s *Search) Enabled() bool {
	return s != nil && s.client != nil
}

// IndexProduct pushes one product document. Called in a goroutine from the
// admin CRUD handlers; indexing failures only get logged.
func (s *Search) IndexProduct(p models.Product) {
	if !s.Enabled() {
		log.Println("⚠️ Elasticsearch not configured, skipping index for:", p.Name)
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID.String(),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		log.Println("❌ Elasticsearch index request failed:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elasticsearch returned an error for %s: %s", p.Name, res.String())
	} else {
		log.Printf("✅ Product indexed in Elasticsearch: %s", p.Name)
	}
}

// RemoveProduct deletes the document after an admin hard delete.
func (s *Search) RemoveProduct(id string) {
	if !s.Enabled() {
		return
	}
	req := esapi.DeleteRequest{Index: productIndex, DocumentID: id}
	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		log.Println("❌ Elasticsearch delete request failed:", err)
		return
	}
	res.Body.Close()
}

// SearchProducts runs a multi-field match over name, hindi name, description
// and ingredients.
func (s *Search) SearchProducts(query string) ([]map[string]interface{}, error) {
	if !s.Enabled() {
		return nil, errors.New("elasticsearch client not configured")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "hindiName", "description", "ingredients"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("query encode failed: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch request failed: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("index missing or empty")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("response decode failed: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("malformed elasticsearch response (no hits)")
	}
	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("malformed elasticsearch response (no hits array)")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, h := range hitsArray {
		hit, ok := h.(map[string]interface{})
		if !ok {
			continue
		}
		if source, ok := hit["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}
	return results, nil
}
