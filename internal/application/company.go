package application

import (
	"context"
	"sort"

	"github.com/internquest/internquest/internal/gateway"
	"github.com/internquest/internquest/pkg/models"
)

const collectionCompanies = "companies"

// AddCompany registers a partner company and returns its id
func (s *Service) AddCompany(ctx context.Context, c models.Company) (string, error) {
	return s.gw.AddDocument(ctx, collectionCompanies, map[string]any{
		"name":     c.Name,
		"location": c.Location,
		"field":    c.Field,
	})
}

// Companies lists all partner companies sorted by name
func (s *Service) Companies(ctx context.Context) ([]models.Company, error) {
	// An absent field compares equal to nil, so this matches every
	// document in the collection.
	docs, err := s.gw.Query(ctx, collectionCompanies, "", gateway.OpEqual, nil)
	if err != nil {
		return nil, err
	}

	companies := []models.Company{}
	for _, doc := range docs {
		c := models.Company{ID: doc.ID}
		if v, ok := doc.Data["name"].(string); ok {
			c.Name = v
		}
		if v, ok := doc.Data["location"].(string); ok {
			c.Location = v
		}
		if v, ok := doc.Data["field"].(string); ok {
			c.Field = v
		}
		companies = append(companies, c)
	}

	sort.Slice(companies, func(i, j int) bool { return companies[i].Name < companies[j].Name })
	return companies, nil
}

// Company fetches one company by id
func (s *Service) Company(ctx context.Context, id string) (*models.Company, error) {
	data, err := s.gw.GetDocument(ctx, collectionCompanies, id)
	if err != nil {
		return nil, err
	}

	c := &models.Company{ID: id}
	if v, ok := data["name"].(string); ok {
		c.Name = v
	}
	if v, ok := data["location"].(string); ok {
		c.Location = v
	}
	if v, ok := data["field"].(string); ok {
		c.Field = v
	}
	return c, nil
}
