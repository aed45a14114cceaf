package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"CatalogBuilder/ai/gpt"
	"CatalogBuilder/entity"
)

type fakeBriefService struct {
	brief *entity.Brief
	err   error
	calls int
}

func (f *fakeBriefService) CreateBrief(_ context.Context, _ entity.GenerateRequest) (*entity.Brief, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.brief, nil
}

type fakeImageService struct {
	urls  []string
	err   error
	calls int
}

func (f *fakeImageService) CreateProductImages(_ context.Context, _ string, _ []string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.urls, nil
}

func testCore(bs BriefService, is ImageService) *Core {
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.SetBriefService(bs)
	c.SetImageService(is)
	return c
}

func testRequest() entity.GenerateRequest {
	return entity.GenerateRequest{
		ProductName: "Wireless Mouse",
		Keywords:    []string{"ergonomic"},
		Country:     "Germany",
		Language:    "German",
	}
}

func testBrief() *entity.Brief {
	return &entity.Brief{
		ProductDescription: "# Kabellose Maus\nEine ergonomische Maus.",
		BulletPoints:       []string{"a", "b", "c"},
		MarketingBlurb:     "Die beste Maus.",
		Sources:            []entity.Source{{Name: "Amazon.de", URL: "https://amazon.de"}},
	}
}

func TestGenerateContentSuccess(t *testing.T) {
	brief := &fakeBriefService{brief: testBrief()}
	images := &fakeImageService{urls: []string{"https://images.example.com/mouse.png"}}

	resp, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.ImageUrls) != 1 {
		t.Errorf("expected 1 image url, got %d", len(resp.ImageUrls))
	}
	if len(resp.Sources) != 1 {
		t.Errorf("expected 1 source, got %d", len(resp.Sources))
	}
	if resp.ProductDescription == "" || resp.MarketingBlurb == "" {
		t.Error("expected non-empty description and blurb")
	}
	if len(resp.BulletPoints) < 3 || len(resp.BulletPoints) > 6 {
		t.Errorf("expected 3-6 bullet points, got %d", len(resp.BulletPoints))
	}
	if brief.calls != 1 || images.calls != 1 {
		t.Errorf("expected one call per collaborator, got brief=%d images=%d", brief.calls, images.calls)
	}
}

func TestGenerateContentMalformedBrief(t *testing.T) {
	brief := &fakeBriefService{err: gpt.ErrMalformedReply}
	images := &fakeImageService{urls: []string{"https://images.example.com/mouse.png"}}

	_, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}

	var coreErr *Error
	if !errors.As(err, &coreErr) {
		t.Fatalf("expected *core.Error, got %T", err)
	}
	if coreErr.Kind != KindUpstreamBrief {
		t.Errorf("expected KindUpstreamBrief, got %d", coreErr.Kind)
	}
	if coreErr.Detail != "Malformed response from language model" {
		t.Errorf("unexpected detail: %q", coreErr.Detail)
	}
	if images.calls != 0 {
		t.Errorf("image service must not be called after a failed brief, got %d calls", images.calls)
	}
}

func TestGenerateContentBriefErrorPassesThrough(t *testing.T) {
	brief := &fakeBriefService{err: fmt.Errorf("connection refused")}
	images := &fakeImageService{}

	_, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}

	var coreErr *Error
	if errors.As(err, &coreErr) {
		t.Fatalf("transport failures must pass through untagged, got kind %d", coreErr.Kind)
	}
	if err.Error() != "connection refused" {
		t.Errorf("unexpected error text: %q", err.Error())
	}
	if images.calls != 0 {
		t.Errorf("image service must not be called after a failed brief, got %d calls", images.calls)
	}
}

func TestGenerateContentImageError(t *testing.T) {
	brief := &fakeBriefService{brief: testBrief()}
	images := &fakeImageService{err: fmt.Errorf("quota exceeded")}

	_, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}

	var coreErr *Error
	if !errors.As(err, &coreErr) {
		t.Fatalf("expected *core.Error, got %T", err)
	}
	if coreErr.Kind != KindUpstreamImage {
		t.Errorf("expected KindUpstreamImage, got %d", coreErr.Kind)
	}
	if !strings.HasPrefix(coreErr.Detail, "Image generation failed: ") {
		t.Errorf("unexpected detail: %q", coreErr.Detail)
	}
	if !strings.Contains(coreErr.Detail, "quota exceeded") {
		t.Errorf("detail must carry the upstream error text: %q", coreErr.Detail)
	}
}

func TestGenerateContentMissingSources(t *testing.T) {
	var b entity.Brief
	if err := json.Unmarshal(
		[]byte(`{"product_description":"d","bullet_points":["a","b","c"],"marketing_blurb":"m"}`),
		&b,
	); err != nil {
		t.Fatalf("failed to unmarshal brief: %v", err)
	}
	brief := &fakeBriefService{brief: &b}
	images := &fakeImageService{urls: []string{"https://images.example.com/mouse.png"}}

	_, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}

	var coreErr *Error
	if !errors.As(err, &coreErr) {
		t.Fatalf("expected *core.Error, got %T", err)
	}
	if coreErr.Kind != KindResponseShape {
		t.Errorf("expected KindResponseShape, got %d", coreErr.Kind)
	}
	if !strings.HasPrefix(coreErr.Detail, "Invalid model response: ") {
		t.Errorf("unexpected detail: %q", coreErr.Detail)
	}
}

func TestGenerateContentEmptySourcesIsSuccess(t *testing.T) {
	b := testBrief()
	b.Sources = []entity.Source{}
	brief := &fakeBriefService{brief: b}
	images := &fakeImageService{urls: []string{"https://images.example.com/mouse.png"}}

	resp, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to marshal response: %v", err)
	}
	if !strings.Contains(string(body), `"sources":[]`) {
		t.Errorf("empty sources must marshal as []: %s", body)
	}
}

func TestGenerateContentAcceptsEmptyBullet(t *testing.T) {
	b := testBrief()
	b.BulletPoints = []string{"a", "", "c"}
	brief := &fakeBriefService{brief: b}
	images := &fakeImageService{urls: []string{"https://images.example.com/mouse.png"}}

	if _, err := testCore(brief, images).GenerateContent(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateContentSourceMissingURL(t *testing.T) {
	b := testBrief()
	b.Sources = []entity.Source{{Name: "Amazon.de"}}
	brief := &fakeBriefService{brief: b}
	images := &fakeImageService{urls: []string{"https://images.example.com/mouse.png"}}

	_, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}

	var coreErr *Error
	if !errors.As(err, &coreErr) {
		t.Fatalf("expected *core.Error, got %T", err)
	}
	if coreErr.Kind != KindResponseShape {
		t.Errorf("expected KindResponseShape, got %d", coreErr.Kind)
	}
	if !strings.HasPrefix(coreErr.Detail, "Invalid model response: ") {
		t.Errorf("unexpected detail: %q", coreErr.Detail)
	}
}

func TestGenerateContentMalformedSourceURL(t *testing.T) {
	b := testBrief()
	b.Sources = []entity.Source{{Name: "Amazon.de", URL: "not a url"}}
	brief := &fakeBriefService{brief: b}
	images := &fakeImageService{}

	_, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())

	var coreErr *Error
	if !errors.As(err, &coreErr) || coreErr.Kind != KindResponseShape {
		t.Fatalf("expected response shape error, got %v", err)
	}
}

func TestGenerateContentTooFewBullets(t *testing.T) {
	b := testBrief()
	b.BulletPoints = []string{"a", "b"}
	brief := &fakeBriefService{brief: b}
	images := &fakeImageService{}

	_, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())

	var coreErr *Error
	if !errors.As(err, &coreErr) || coreErr.Kind != KindResponseShape {
		t.Fatalf("expected response shape error, got %v", err)
	}
	if !strings.HasPrefix(coreErr.Detail, "Invalid model response: ") {
		t.Errorf("unexpected detail: %q", coreErr.Detail)
	}
}

func TestGenerateContentZeroImagesIsSuccess(t *testing.T) {
	brief := &fakeBriefService{brief: testBrief()}
	images := &fakeImageService{urls: []string{}}

	resp, err := testCore(brief, images).GenerateContent(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.ImageUrls) != 0 {
		t.Errorf("expected no image urls, got %d", len(resp.ImageUrls))
	}
}

func TestGenerateContentNotInitialized(t *testing.T) {
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.GenerateContent(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}
}
