// Package torsion enumerates the measurable torsion angle kinds of RNA
// structures and resolves user-supplied angle lists against them.
package torsion

import (
	"fmt"
	"strings"
)

// AngleType names one measurable torsion angle kind.
type AngleType string

const (
	Alpha   AngleType = "alpha"
	Beta    AngleType = "beta"
	Gamma   AngleType = "gamma"
	Delta   AngleType = "delta"
	Epsilon AngleType = "epsilon"
	Zeta    AngleType = "zeta"
	Chi     AngleType = "chi"

	Eta       AngleType = "eta"
	Theta     AngleType = "theta"
	EtaPrim   AngleType = "eta-prim"
	ThetaPrim AngleType = "theta-prim"

	PseudophasePucker AngleType = "pseudophase-pucker"
)

var all = []AngleType{
	Alpha, Beta, Gamma, Delta, Epsilon, Zeta, Chi,
	Eta, Theta, EtaPrim, ThetaPrim,
	PseudophasePucker,
}

// mainAngles is the default subset used when the user picks no angles: the
// six backbone angles plus the glycosidic bond angle.
var mainAngles = []AngleType{Alpha, Beta, Gamma, Delta, Epsilon, Zeta, Chi}

// All returns every known angle type, in a fresh slice.
func All() []AngleType {
	return append([]AngleType(nil), all...)
}

// MainAngles returns the default angle subset, in a fresh slice that the
// caller may modify.
func MainAngles() []AngleType {
	return append([]AngleType(nil), mainAngles...)
}

// Parse resolves a comma-separated list of angle type names. A blank list
// yields MainAngles. An unrecognized name fails the whole resolution with no
// partial result.
func Parse(csv string) ([]AngleType, error) {
	if strings.TrimSpace(csv) == "" {
		return MainAngles(), nil
	}

	tokens := strings.Split(csv, ",")
	angles := make([]AngleType, 0, len(tokens))
	for _, token := range tokens {
		angle, err := lookup(token)
		if err != nil {
			return nil, err
		}
		angles = append(angles, angle)
	}
	return angles, nil
}

func lookup(name string) (AngleType, error) {
	for _, angle := range all {
		if AngleType(name) == angle {
			return angle, nil
		}
	}
	return "", fmt.Errorf("unknown torsion angle type '%s' (select from: %s)",
		name, Join(all))
}

// Join renders angle types as the comma-separated form used on the command
// line.
func Join(angles []AngleType) string {
	parts := make([]string, len(angles))
	for i, angle := range angles {
		parts[i] = string(angle)
	}
	return strings.Join(parts, ",")
}
