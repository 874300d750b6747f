package ai

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// BuildContext renders the mission and its scores as the plain-text block the
// analysis prompt embeds.
func BuildContext(p *interfaces.MissionParameters, s *interfaces.ScoreResult) string {
	var b strings.Builder

	b.WriteString("MISSION DETAILS:\n")
	fmt.Fprintf(&b, "- Business Category: %s\n", p.BusinessCategory)
	fmt.Fprintf(&b, "- Target Annual Revenue: $%s\n", humanize.Commaf(p.TargetRevenue))
	fmt.Fprintf(&b, "- Product Value Density: $%s/kg\n", humanize.Commaf(p.ProductValueDensity))
	fmt.Fprintf(&b, "- Target Market: %s\n", p.TargetMarket)
	fmt.Fprintf(&b, "- Constellation Size: %d\n", p.ConstellationSize)
	fmt.Fprintf(&b, "- Target Orbital Altitude: %gkm\n", p.TargetAltitude)
	fmt.Fprintf(&b, "- Mission Lifespan: %g years\n", p.MissionLifespan)
	fmt.Fprintf(&b, "- Launch Vehicle: %s\n", p.LaunchVehicleType)
	fmt.Fprintf(&b, "- Payload Mass: %gkg\n", p.PayloadMass)
	fmt.Fprintf(&b, "- Lead Time Tolerance: %g months\n", p.LeadTimeTolerance)
	fmt.Fprintf(&b, "- In-Space Propulsion: %s\n", yesNo(p.InSpacePropulsion))
	fmt.Fprintf(&b, "- De-orbit Method: %s\n", p.DeorbitMethod)
	fmt.Fprintf(&b, "- Space Situational Awareness Strategy: %s\n", p.SSAStrategy)
	fmt.Fprintf(&b, "- Data Licensing Model: %s\n", p.DataLicensing)
	if p.LaunchSite != "" {
		fmt.Fprintf(&b, "- Launch Site: %s\n", p.LaunchSite)
	}

	b.WriteString("\nCURRENT ASSESSMENT SCORES:\n")
	fmt.Fprintf(&b, "- Overall Business Health: %d/100\n", s.Overall)
	fmt.Fprintf(&b, "- Financial Viability: %d/100\n", s.Financial)
	fmt.Fprintf(&b, "- Debris Risk: %d/100\n", s.Debris)
	fmt.Fprintf(&b, "- Regulatory Compliance: %d/100\n", s.Regulatory)
	fmt.Fprintf(&b, "- Technical Feasibility: %d/100\n", s.Technical)
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
