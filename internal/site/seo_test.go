package site

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/perspectivehealth/clinic-site/internal/clinic"
)

func marshalSchema(t *testing.T, s Schema) []byte {
	t.Helper()
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	return raw
}

func TestLocalBusinessSchemaDeterministic(t *testing.T) {
	a := marshalSchema(t, LocalBusinessSchema())
	b := marshalSchema(t, LocalBusinessSchema())
	if !bytes.Equal(a, b) {
		t.Fatalf("expected deterministic output")
	}
	doc := string(a)
	for _, want := range []string{
		clinic.Site.Name,
		clinic.Site.Phone,
		clinic.Site.Address.Street,
		"MedicalBusiness",
		"AggregateRating",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("expected schema to contain %q", want)
		}
	}
}

func TestMedicalServiceSchema(t *testing.T) {
	detail, ok := clinic.ServiceBySlug("integrative-functional-medicine")
	if !ok {
		t.Fatalf("expected functional-medicine in catalog")
	}
	doc := string(marshalSchema(t, MedicalServiceSchema(detail.Name, detail.MetaDescription, "/services/"+detail.Slug)))
	if !strings.Contains(doc, "MedicalProcedure") {
		t.Fatalf("expected MedicalProcedure type")
	}
	if !strings.Contains(doc, clinic.Site.URL+"/services/integrative-functional-medicine") {
		t.Fatalf("expected absolute service URL")
	}
}

func TestArticleSchema(t *testing.T) {
	post, ok := PostBySlug("gut-health-basics")
	if !ok {
		t.Fatalf("expected post to exist")
	}
	doc := string(marshalSchema(t, ArticleSchema(post)))
	for _, want := range []string{post.Frontmatter.Title, post.Frontmatter.Author, "/blog/gut-health-basics"} {
		if !strings.Contains(doc, want) {
			t.Errorf("expected article schema to contain %q", want)
		}
	}
}
