package costmodel

import "github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"

// Fallbacks for missing cost inputs.
const (
	DefaultConstellationSize = 1
	DefaultTargetAltitude    = 400.0       // km
	DefaultMissionLifespan   = 3.0         // years
	DefaultPayloadMass       = 200.0       // kg
	DefaultLeadTimeTolerance = 18.0        // months
	DefaultTargetRevenue     = 5_000_000.0 // USD per year
)

// Input is the cost-relevant subset of MissionParameters. A nil field is
// missing and takes its documented default, so the model can run before the
// wizard is complete.
type Input struct {
	ConstellationSize *int     `json:"constellationSize,omitempty" yaml:"constellationSize,omitempty"`
	TargetAltitude    *float64 `json:"targetAltitude,omitempty" yaml:"targetAltitude,omitempty"`
	MissionLifespan   *float64 `json:"missionLifespan,omitempty" yaml:"missionLifespan,omitempty"`
	PayloadMass       *float64 `json:"payloadMass,omitempty" yaml:"payloadMass,omitempty"`
	LeadTimeTolerance *float64 `json:"leadTimeTolerance,omitempty" yaml:"leadTimeTolerance,omitempty"`
	TargetRevenue     *float64 `json:"targetRevenue,omitempty" yaml:"targetRevenue,omitempty"`
}

// InputFrom builds an Input from a complete mission record: every field is
// supplied, so an explicit 0 is priced as 0. Callers holding a partially
// filled source document should decode an Input from it instead, which keeps
// absent fields nil.
func InputFrom(p *interfaces.MissionParameters) Input {
	if p == nil {
		return Input{}
	}
	return Input{
		ConstellationSize: Int(p.ConstellationSize),
		TargetAltitude:    Float(p.TargetAltitude),
		MissionLifespan:   Float(p.MissionLifespan),
		PayloadMass:       Float(p.PayloadMass),
		LeadTimeTolerance: Float(p.LeadTimeTolerance),
		TargetRevenue:     Float(p.TargetRevenue),
	}
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// resolved is an Input with every default applied.
type resolved struct {
	constellationSize float64
	targetAltitude    float64
	missionLifespan   float64
	payloadMass       float64
	leadTimeTolerance float64
	targetRevenue     float64
	// rawRevenue is the revenue as supplied, 0 when missing. The ISRO
	// operations discount compares against it rather than the default.
	rawRevenue float64
}

func (in Input) resolve() resolved {
	r := resolved{
		constellationSize: DefaultConstellationSize,
		targetAltitude:    DefaultTargetAltitude,
		missionLifespan:   DefaultMissionLifespan,
		payloadMass:       DefaultPayloadMass,
		leadTimeTolerance: DefaultLeadTimeTolerance,
		targetRevenue:     DefaultTargetRevenue,
	}
	if in.ConstellationSize != nil {
		r.constellationSize = float64(*in.ConstellationSize)
	}
	if in.TargetAltitude != nil {
		r.targetAltitude = *in.TargetAltitude
	}
	if in.MissionLifespan != nil {
		r.missionLifespan = *in.MissionLifespan
	}
	if in.PayloadMass != nil {
		r.payloadMass = *in.PayloadMass
	}
	if in.LeadTimeTolerance != nil {
		r.leadTimeTolerance = *in.LeadTimeTolerance
	}
	if in.TargetRevenue != nil {
		r.targetRevenue = *in.TargetRevenue
		r.rawRevenue = *in.TargetRevenue
	}

	// YAML admits .inf and .nan.
	for _, v := range []*float64{&r.targetAltitude, &r.missionLifespan, &r.payloadMass,
		&r.leadTimeTolerance, &r.targetRevenue, &r.rawRevenue} {
		*v = finite(*v)
	}
	return r
}
