package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

func TestMatch_ConcurrentCallers(t *testing.T) {
	cats := DefaultCategories()
	queries := map[string]string{
		"Blue JEANS":   "pants",
		"gold ring":    "jewelry",
		"wool sweater": "tops",
		"MAXI dress":   "dresses",
		"suede boots":  "footwear",
	}
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		for query, want := range queries {
			g.Go(func() error {
				for j := 0; j < 200; j++ {
					if got, ok := Match(cats, query); !ok || got != want {
						return fmt.Errorf("Match(%q) = (%q, %v), want %q", query, got, ok, want)
					}
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestMatch_KeywordRouting(t *testing.T) {
	cats := DefaultCategories()
	cases := []struct {
		query string
		want  string
		ok    bool
	}{
		{"jeans", "pants", true},
		{"  Black SLACKS  ", "pants", true},
		{"gold necklace", "jewelry", true},
		{"a cosy hoodie", "tops", true},
		{"midi", "dresses", true},
		{"running sneakers", "footwear", true},
		{"sofa", "", false},
		{"   ", "", false},
		// "earring" contains "ring"; both belong to jewelry.
		{"earrings", "jewelry", true},
		// First declared category wins: "tops" beats "dresses".
		{"top and skirt", "tops", true},
		// "pants" is declared before "footwear".
		{"boots and pants", "pants", true},
	}
	for _, tc := range cases {
		got, ok := Match(cats, tc.query)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Match(%q) = (%q, %v), want (%q, %v)", tc.query, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDefault_EmbeddedCatalog(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	if len(cat.Categories) != 5 || cat.Categories[0].ID != "pants" || cat.Categories[4].ID != "footwear" {
		t.Fatalf("categories = %+v, want default order pants..footwear", cat.Categories)
	}
	for _, c := range cat.Categories {
		if len(cat.ByCategory(c.ID)) == 0 {
			t.Fatalf("category %q has no products", c.ID)
		}
	}
	if cat.Source != "embedded" {
		t.Fatalf("Source = %q, want embedded", cat.Source)
	}
	if got, ok := cat.Match("dress"); !ok || got != "dresses" {
		t.Fatalf("Match(dress) = (%q, %v)", got, ok)
	}
}

func TestLoad_ResolvesImagesRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeFile(t, path, `
categories:
  - id: hats
    label: Hats
    synonyms: [hat, cap, beanie]
products:
  - name: Wool Beanie
    price: "£12.00"
    image: img/beanie.png
    category: hats
  - name: Remote Cap
    price: "£8.00"
    image: https://example.com/cap.png
    category: hats
`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cat.Categories) != 1 || cat.Categories[0].ID != "hats" {
		t.Fatalf("categories = %+v, want [hats]", cat.Categories)
	}
	if want := filepath.Join(dir, "img", "beanie.png"); cat.Products[0].ImageRef != want {
		t.Fatalf("ImageRef = %q, want %q", cat.Products[0].ImageRef, want)
	}
	if cat.Products[1].ImageRef != "https://example.com/cap.png" {
		t.Fatalf("remote ImageRef rewritten: %q", cat.Products[1].ImageRef)
	}
	if got, ok := cat.Match("BEANIE please"); !ok || got != "hats" {
		t.Fatalf("Match = (%q, %v), want hats", got, ok)
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	cat, err := Load("  ")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cat.Source != "embedded" {
		t.Fatalf("Source = %q, want embedded", cat.Source)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"bad yaml":          "products: [",
		"unknown category":  "products:\n  - name: X\n    category: hats\n",
		"empty name":        "products:\n  - name: ''\n    category: pants\n",
		"duplicate id":      "categories:\n  - id: a\n  - id: a\n",
		"empty category id": "categories:\n  - id: ''\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), "")
			if err == nil {
				t.Fatalf("Parse returned nil error")
			}
			if !strings.Contains(err.Error(), "parse catalog") {
				t.Fatalf("error = %q, want it to mention parse catalog", err)
			}
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	dup := cat.Clone()
	dup.Products[0].Name = "changed"
	dup.Categories[0].Synonyms[0] = "changed"
	if cat.Products[0].Name == "changed" || cat.Categories[0].Synonyms[0] == "changed" {
		t.Fatalf("Clone shares backing arrays")
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeFile(t, path, "products:\n  - name: A\n    price: '£1.00'\n    category: pants\n")

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan Catalog, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c Catalog, err error) {
			if err != nil {
				return
			}
			select {
			case results <- c:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, path, "products:\n  - name: B\n    price: '£2.00'\n    category: tops\n")

	// A truncating write can surface an empty intermediate file first.
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case c := <-results:
			reloaded = len(c.Products) == 1 && c.Products[0].Name == "B"
		case <-deadline:
			t.Fatalf("no reload with product B observed")
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch returned error: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}
