package search

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kcbailey111/AffordRX/catalog"
	"github.com/kcbailey111/AffordRX/interfaces"
	"github.com/kcbailey111/AffordRX/logging"
	"github.com/kcbailey111/AffordRX/pricing"
)

// Request carries the raw search inputs. Dosage and Quantity are the
// user-selected option strings, not parsed numbers.
type Request struct {
	Medication string
	Dosage     string
	Quantity   string
}

// Service resolves a search request against the loaded dataset partitions
// and the pharmacy registry, pricing each hit through the engine.
type Service struct {
	store      interfaces.DataStore
	engine     *pricing.Engine
	pharmacies []catalog.PharmacyLocation
}

func NewService(store interfaces.DataStore) *Service {
	return &Service{
		store:      store,
		engine:     pricing.NewEngine(),
		pharmacies: catalog.Pharmacies(),
	}
}

// Search prices the requested medication at every registry pharmacy that has
// a matching feed record, ranked cheapest first.
func (s *Service) Search(req Request) (*Response, error) {
	if !s.anyPartitionReady() {
		return nil, ErrDataNotReady
	}

	drug := strings.ToLower(strings.TrimSpace(req.Medication))
	canonical := catalog.CanonicalName(req.Medication)

	results := make([]priced, 0, len(s.pharmacies))
	partial := false
	for _, ph := range s.pharmacies {
		key := s.store.PartitionFor(ph.PostalCode)
		if s.store.State(key) != interfaces.StateReady {
			// This pharmacy's partition has no usable data right now.
			// Drop it from the ranking and flag the response instead of
			// failing the whole search.
			partial = true
			continue
		}
		base, ok := s.lookupBasePrice(drug, key, ph)
		if !ok && canonical != drug {
			base, ok = s.lookupBasePrice(canonical, key, ph)
		}
		if !ok {
			continue
		}
		quote := s.engine.ComputePrice(base, req.Dosage, req.Quantity, ph.PostalCode, req.Medication)
		results = append(results, priced{pharmacy: ph, quote: quote})
	}

	if len(results) == 0 {
		if !s.drugExists(drug) && !s.drugExists(canonical) {
			return nil, ErrDrugNotFound
		}
		return nil, &NoResultsError{
			Medication:  req.Medication,
			Suggestions: s.suggestions(drug),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].quote.FinalPrice.LessThan(results[j].quote.FinalPrice)
	})

	resp := buildResponse(req, results)
	resp.PartialData = partial
	logging.Debug("Search completed",
		"medication", req.Medication,
		"results", len(results),
		"best_price", resp.BestPrice)
	return resp, nil
}

type priced struct {
	pharmacy catalog.PharmacyLocation
	quote    pricing.Quote
}

// lookupBasePrice scans the given partition for the first record whose
// normalized name equals drug and whose pharmacy field contains the first
// token of the registry pharmacy's name. First match in dataset order wins.
func (s *Service) lookupBasePrice(drug, key string, ph catalog.PharmacyLocation) (decimal.Decimal, bool) {
	token := firstToken(ph.Name)
	for _, rec := range s.store.Records(key) {
		if rec.NameNormalized != drug {
			continue
		}
		if !strings.Contains(strings.ToLower(rec.Pharmacy), token) {
			continue
		}
		price, err := pricing.ParsePrice(rec.Price)
		if err != nil {
			logging.Debug("Skipping unpriceable record",
				"drug", rec.Name, "pharmacy", rec.Pharmacy, "price", rec.Price, "error", err)
			continue
		}
		return price, true
	}
	return decimal.Decimal{}, false
}

func (s *Service) anyPartitionReady() bool {
	for _, p := range s.store.Partitions() {
		if s.store.State(p.Key) == interfaces.StateReady {
			return true
		}
	}
	return false
}

// drugExists reports whether any ready partition carries the drug at all,
// regardless of pharmacy. It separates DRUG_NOT_FOUND from the case where
// the drug is priced only at pharmacies outside the registry.
func (s *Service) drugExists(drug string) bool {
	if drug == "" {
		return false
	}
	for _, p := range s.store.Partitions() {
		if s.store.State(p.Key) != interfaces.StateReady {
			continue
		}
		for _, rec := range s.store.Records(p.Key) {
			if rec.NameNormalized == drug {
				return true
			}
		}
	}
	return false
}

// suggestions returns up to three known medication names, preferring ones
// that share a prefix with the query.
func (s *Service) suggestions(drug string) []string {
	names := s.store.DrugNames()
	out := make([]string, 0, 3)
	if len(drug) >= 3 {
		prefix := drug[:3]
		for _, n := range names {
			if strings.HasPrefix(strings.ToLower(n), prefix) {
				out = append(out, n)
				if len(out) == 3 {
					return out
				}
			}
		}
	}
	for _, n := range names {
		if len(out) == 3 {
			break
		}
		if !containsString(out, n) {
			out = append(out, n)
		}
	}
	return out
}

func firstToken(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
