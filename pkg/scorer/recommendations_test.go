package scorer

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}

func TestRecommend_TriggersMatchThresholds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	engines := []*Engine{NewEngine(), NewEngine(WithPolicy(Reference{}))}

	for _, e := range engines {
		for i := 0; i < 500; i++ {
			res := e.Score(randomMission(rng))
			recs := res.Recommendations

			checks := []struct {
				name   string
				bucket []string
				item   string
				fired  bool
			}{
				{"mandatory debris", recs.Mandatory, DebrisMitigationItems[0], res.Debris < MandatoryDebrisBelow},
				{"mandatory regulatory", recs.Mandatory, ComplianceItems[0], res.Regulatory < MandatoryRegulatoryBelow},
				{"mandatory financial", recs.Mandatory, BusinessModelItems[0], res.Financial < MandatoryFinancialBelow},
				{"recommended technical", recs.Recommended, TechnicalItems[0], res.Technical < RecommendedTechnicalBelow},
				{"recommended financial", recs.Recommended, CostItems[0], res.Financial < RecommendedFinancialBelow},
				{"recommended debris", recs.Recommended, DeorbitItems[0], res.Debris < RecommendedDebrisBelow},
			}
			for _, c := range checks {
				if contains(c.bucket, c.item) != c.fired {
					t.Fatalf("%s policy: %s trigger mismatch (fired=%v) for scores %+v", e.Policy(), c.name, c.fired, res)
				}
			}
		}
	}
}

func TestRecommend_BaselineConstant(t *testing.T) {
	want := BaselineRecommendations()
	if len(want) != 5 {
		t.Fatalf("expected 5 baseline items, got %d", len(want))
	}

	inputs := []*interfaces.ScoreResult{
		{},
		{Overall: 100, Financial: 100, Debris: 0, Regulatory: 100, Technical: 100},
		{Financial: 10, Debris: 95, Regulatory: 5, Technical: 10},
	}
	for _, in := range inputs {
		got := Recommend(in).Baseline
		if !reflect.DeepEqual(got, want) {
			t.Errorf("baseline changed for %+v: %v", in, got)
		}
	}
}

func TestRecommend_Boundaries(t *testing.T) {
	// Exactly at each threshold nothing fires.
	res := &interfaces.ScoreResult{Financial: 70, Debris: 80, Regulatory: 60, Technical: 70}
	recs := Recommend(res)
	if len(recs.Mandatory) != 0 {
		t.Errorf("expected no mandatory items at thresholds, got %v", recs.Mandatory)
	}
	if len(recs.Recommended) != 0 {
		t.Errorf("expected no recommended items at thresholds, got %v", recs.Recommended)
	}
	if recs.Mandatory == nil || recs.Recommended == nil {
		t.Error("empty buckets should be non-nil")
	}
}

func TestRecommend_AllTriggers(t *testing.T) {
	res := &interfaces.ScoreResult{Financial: 10, Debris: 10, Regulatory: 10, Technical: 10}
	recs := Recommend(res)

	wantMandatory := append(append(append([]string{}, DebrisMitigationItems...), ComplianceItems...), BusinessModelItems...)
	if !reflect.DeepEqual(recs.Mandatory, wantMandatory) {
		t.Errorf("mandatory = %v, want %v", recs.Mandatory, wantMandatory)
	}
	wantRecommended := append(append(append([]string{}, TechnicalItems...), CostItems...), DeorbitItems...)
	if !reflect.DeepEqual(recs.Recommended, wantRecommended) {
		t.Errorf("recommended = %v, want %v", recs.Recommended, wantRecommended)
	}
}
