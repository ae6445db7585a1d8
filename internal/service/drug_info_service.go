package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/repository/contract"
	"medinfo-be/pkg/llm"
	"medinfo-be/pkg/websearch"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	drugInfoCachePrefix = "druginfo:"
	drugInfoCacheTTL    = time.Hour

	priceSearchResults       = 20
	maxPriceListings         = 10
	compositionSearchResults = 5
	topicSearchResults       = 10
)

const priceSystemPrompt = `You extract medicine prices from web search results.
The user sends a JSON list of results, each with "title", "snippet" and "link".
Find up to 10 listings where an online pharmacy or retailer sells the medicine.

Rules:
- Read the price and the store name from the title and snippet.
- Use the result's "link" unchanged as the "url".
- Skip pages that only describe the medicine (encyclopedias, blogs, news).
- Reply with one JSON object: {"prices": [{"store": "...", "price": "...", "url": "..."}]}`

const compositionSystemPrompt = `Identify the exact active composition of the medicine the user asks about,
using the web context provided. Include strengths when known.
Reply with one JSON object: {"composition": "Paracetamol 500mg"}`

const reportSystemPrompt = `You write drug information reports from web search context.
The context is split into labelled sections. Use each section only for its matching field.

Rules:
- "uses", "side_effects" and "warnings" are thorough bullet lists of short sentences.
- "alternatives" lists brands with the same composition; include a brand only when its manufacturer is known.
- "generic_info_paragraph" explains the drug class and how the drug works.
- Reply with one JSON object:
{"generic_info_paragraph": "...",
 "summary": {"uses": ["..."], "side_effects": ["..."], "warnings": ["..."]},
 "alternatives": [{"brand_name": "...", "manufacturer": "..."}]}`

type IDrugInfoService interface {
	ComparePrices(ctx context.Context, req *dto.DrugQueryRequest) (*dto.PriceComparisonResponse, error)
	Report(ctx context.Context, req *dto.DrugQueryRequest) (*dto.DrugReportResponse, error)
}

type drugInfoService struct {
	searcher websearch.Searcher
	provider llm.LLMProvider
	cache    contract.ResultCache
	logger   logger.ILogger
}

func NewDrugInfoService(searcher websearch.Searcher, provider llm.LLMProvider, cache contract.ResultCache, log logger.ILogger) IDrugInfoService {
	return &drugInfoService{
		searcher: searcher,
		provider: provider,
		cache:    cache,
		logger:   log,
	}
}

type extractedListing struct {
	Store string          `json:"store"`
	Price json.RawMessage `json:"price"`
	URL   string          `json:"url"`
}

// ComparePrices searches the web for shops selling the medicine and has the
// model pull store, price and link out of the hits. Only links that came
// back from the search are kept.
func (s *drugInfoService) ComparePrices(ctx context.Context, req *dto.DrugQueryRequest) (*dto.PriceComparisonResponse, error) {
	name := strings.TrimSpace(req.MedicineName)
	if name == "" {
		return nil, ErrInvalidInput
	}

	key := drugInfoCachePrefix + "prices:" + strings.ToLower(name)
	var cached dto.PriceComparisonResponse
	if ok, err := s.cache.Get(ctx, key, &cached); err == nil && ok {
		return &cached, nil
	}

	results, err := s.searcher.Search(ctx, fmt.Sprintf(`buy "%s" online price`, name), priceSearchResults)
	if err != nil {
		return nil, fmt.Errorf("price search: %w", err)
	}

	res := &dto.PriceComparisonResponse{MedicineName: name, Prices: []dto.PriceListing{}}
	if len(results) == 0 {
		return res, nil
	}

	hits, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	var extracted struct {
		Prices []extractedListing `json:"prices"`
	}
	prompt := fmt.Sprintf("Extract prices for %q from these search results:\n\n%s", name, hits)
	if err := s.askJSON(ctx, priceSystemPrompt, prompt, &extracted); err != nil {
		return nil, err
	}

	links := make(map[string]bool, len(results))
	for _, r := range results {
		links[r.Link] = true
	}
	for _, l := range extracted.Prices {
		price := priceText(l.Price)
		if !links[l.URL] || strings.TrimSpace(l.Store) == "" || price == "" {
			continue
		}
		res.Prices = append(res.Prices, dto.PriceListing{Store: strings.TrimSpace(l.Store), Price: price, URL: l.URL})
		if len(res.Prices) == maxPriceListings {
			break
		}
	}

	s.logger.Info("DrugInfo", "Price comparison ready", map[string]interface{}{
		"medicine": name,
		"hits":     len(results),
		"listings": len(res.Prices),
	})
	s.store(ctx, key, res)
	return res, nil
}

type reportTopic struct {
	label string
	query string
}

type synthesizedReport struct {
	GenericInfoParagraph string                `json:"generic_info_paragraph"`
	Summary              dto.DrugSummary       `json:"summary"`
	Alternatives         []dto.DrugAlternative `json:"alternatives"`
}

// Report builds a drug report in three model passes: find the composition,
// gather web context per topic, then synthesize the report from it.
func (s *drugInfoService) Report(ctx context.Context, req *dto.DrugQueryRequest) (*dto.DrugReportResponse, error) {
	name := strings.TrimSpace(req.MedicineName)
	if name == "" {
		return nil, ErrInvalidInput
	}

	key := drugInfoCachePrefix + "report:" + strings.ToLower(name)
	var cached dto.DrugReportResponse
	if ok, err := s.cache.Get(ctx, key, &cached); err == nil && ok {
		return &cached, nil
	}

	composition, err := s.composition(ctx, name)
	if err != nil {
		return nil, err
	}
	genericName := strings.Fields(composition)[0]

	topics := []reportTopic{
		{"uses", fmt.Sprintf(`"%s" detailed uses and indications`, composition)},
		{"side_effects", fmt.Sprintf(`"%s" common and rare side effects professional`, composition)},
		{"warnings", fmt.Sprintf(`"%s" contraindications and warnings`, composition)},
		{"alternatives", fmt.Sprintf(`"%s" brand names and manufacturers in india`, composition)},
		{"generic_info", fmt.Sprintf(`what is "%s" medicine class and mechanism of action`, genericName)},
	}

	sections := make([]string, len(topics))
	var imageURL string
	g, gctx := errgroup.WithContext(ctx)
	for i, topic := range topics {
		i, topic := i, topic
		g.Go(func() error {
			results, err := s.searcher.Search(gctx, topic.query, topicSearchResults)
			if err != nil {
				return fmt.Errorf("search %s: %w", topic.label, err)
			}
			sections[i] = joinSnippets(results)
			return nil
		})
	}
	g.Go(func() error {
		link, err := s.searcher.Image(gctx, name+" tablet strip box")
		if err != nil {
			s.logger.Warn("DrugInfo", "Image lookup failed", map[string]interface{}{"medicine": name, "error": err.Error()})
			return nil
		}
		imageURL = link
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var gathered strings.Builder
	for i, topic := range topics {
		fmt.Fprintf(&gathered, "\n\n--- CONTEXT FOR %s ---\n%s", strings.ToUpper(topic.label), sections[i])
	}

	var body synthesizedReport
	prompt := fmt.Sprintf("CONTEXTS:%s\n\nWrite the full report for a drug with composition: %s", gathered.String(), composition)
	if err := s.askJSON(ctx, reportSystemPrompt, prompt, &body); err != nil {
		return nil, err
	}

	res := &dto.DrugReportResponse{
		IdentifiedMedicine:   cases.Title(language.English).String(name),
		Composition:          composition,
		GenericName:          genericName,
		ImageURL:             imageURL,
		GenericInfoParagraph: strings.TrimSpace(body.GenericInfoParagraph),
		Summary: dto.DrugSummary{
			Uses:        nonEmpty(body.Summary.Uses),
			SideEffects: nonEmpty(body.Summary.SideEffects),
			Warnings:    nonEmpty(body.Summary.Warnings),
		},
		Alternatives: uniqueAlternatives(body.Alternatives),
	}

	s.logger.Info("DrugInfo", "Drug report ready", map[string]interface{}{
		"medicine":     name,
		"composition":  composition,
		"alternatives": len(res.Alternatives),
	})
	s.store(ctx, key, res)
	return res, nil
}

func (s *drugInfoService) composition(ctx context.Context, name string) (string, error) {
	results, err := s.searcher.Search(ctx, fmt.Sprintf(`"%s" composition ingredients`, name), compositionSearchResults)
	if err != nil {
		return "", fmt.Errorf("composition search: %w", err)
	}
	if len(results) == 0 {
		return "", ErrCompositionNotFound
	}

	var out struct {
		Composition string `json:"composition"`
	}
	prompt := fmt.Sprintf("CONTEXT: %s\nUSER QUERY: %s", joinSnippets(results), name)
	if err := s.askJSON(ctx, compositionSystemPrompt, prompt, &out); err != nil {
		return "", err
	}
	composition := strings.TrimSpace(out.Composition)
	if composition == "" {
		return "", ErrCompositionNotFound
	}
	return composition, nil
}

// askJSON runs one system+user exchange and decodes the first JSON object in
// the reply into dest.
func (s *drugInfoService) askJSON(ctx context.Context, system, user string, dest interface{}) error {
	history := []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
	reply, err := s.provider.Chat(ctx, history, llm.WithJSONFormat(), llm.WithTemperature(0.1))
	if err != nil {
		s.logger.Error("DrugInfo", "LLM call failed", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("drug info unavailable: %w", err)
	}

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return ErrMalformedModelReply
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), dest); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedModelReply, err)
	}
	return nil
}

func (s *drugInfoService) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, drugInfoCacheTTL); err != nil {
		s.logger.Warn("DrugInfo", "Failed to cache result", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

// priceText accepts a price given either as text or as a bare number.
func priceText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}

func joinSnippets(results []websearch.Result) string {
	snippets := make([]string, 0, len(results))
	for _, r := range results {
		snippets = append(snippets, r.Snippet)
	}
	return strings.Join(snippets, " ")
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// uniqueAlternatives drops brands without a manufacturer and repeated brand names.
func uniqueAlternatives(alts []dto.DrugAlternative) []dto.DrugAlternative {
	seen := make(map[string]bool, len(alts))
	out := make([]dto.DrugAlternative, 0, len(alts))
	for _, a := range alts {
		brand := strings.TrimSpace(a.BrandName)
		maker := strings.TrimSpace(a.Manufacturer)
		if brand == "" || maker == "" || seen[strings.ToLower(brand)] {
			continue
		}
		seen[strings.ToLower(brand)] = true
		out = append(out, dto.DrugAlternative{BrandName: brand, Manufacturer: maker})
	}
	return out
}
