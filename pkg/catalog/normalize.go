package catalog

import (
	"strings"

	"github.com/RakshitYadav09/Nasa-Hack-LEO/pkg/interfaces"
)

// The planning wizard has shipped with two option sets. These tables map the
// alternate spellings onto the canonical values the engines branch on.
var (
	vehicleAliases = map[string]interfaces.LaunchVehicle{
		"reusable":       interfaces.VehicleMedium,
		"expendable":     interfaces.VehicleHeavy,
		"smalldedicated": interfaces.VehicleSmall,
		"small":          interfaces.VehicleSmall,
		"medium":         interfaces.VehicleMedium,
		"heavy":          interfaces.VehicleHeavy,
		"rideshare":      interfaces.VehicleRideshare,
	}

	deorbitAliases = map[string]interfaces.DeorbitMethod{
		"activepropulsion":     interfaces.DeorbitActivePropulsion,
		"propulsive":           interfaces.DeorbitActivePropulsion,
		"dragenhancement":      interfaces.DeorbitDragEnhancement,
		"atmosphericdrag":      interfaces.DeorbitDragEnhancement,
		"debrisremovalservice": interfaces.DeorbitRemovalService,
	}

	ssaAliases = map[string]interfaces.SSAStrategy{
		"commercial": interfaces.SSACommercial,
		"inhouse":    interfaces.SSAInHouse,
		"publicdata": interfaces.SSAPublicData,
	}

	marketAliases = map[string]interfaces.TargetMarket{
		"government":     interfaces.MarketGovernment,
		"enterprise":     interfaces.MarketEnterprise,
		"consumer":       interfaces.MarketConsumer,
		"directconsumer": interfaces.MarketConsumer,
		"d2c":            interfaces.MarketConsumer,
	}

	licensingAliases = map[string]interfaces.DataLicensing{
		"open":       interfaces.LicensingOpen,
		"restricted": interfaces.LicensingRestricted,
		"private":    interfaces.LicensingPrivate,
	}
)

// Normalize returns a copy of p with enum-like fields mapped onto their
// canonical values. Unrecognised values pass through unchanged so that each
// engine's neutral "else" branch applies.
func Normalize(p interfaces.MissionParameters) interfaces.MissionParameters {
	if v, ok := vehicleAliases[aliasKey(string(p.LaunchVehicleType))]; ok {
		p.LaunchVehicleType = v
	}
	if v, ok := deorbitAliases[aliasKey(string(p.DeorbitMethod))]; ok {
		p.DeorbitMethod = v
	}
	if v, ok := ssaAliases[aliasKey(string(p.SSAStrategy))]; ok {
		p.SSAStrategy = v
	}
	if v, ok := marketAliases[aliasKey(string(p.TargetMarket))]; ok {
		p.TargetMarket = v
	}
	if v, ok := licensingAliases[aliasKey(string(p.DataLicensing))]; ok {
		p.DataLicensing = v
	}
	p.BusinessCategory = strings.TrimSpace(p.BusinessCategory)
	return p
}

// aliasKey folds case and drops separators: "In-house", "in house" and
// "InHouse" all become "inhouse".
func aliasKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
