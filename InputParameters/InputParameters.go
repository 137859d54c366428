package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/lidcavity/types"
)

// Parameters obtained from the YAML input file. Zero values mean "use the
// default derived from the Reynolds number".
type InputParametersCavity struct {
	Title         string                        `json:"Title"`
	Re            float64                       `json:"Re"`
	CFL           float64                       `json:"CFL"`
	C2            float64                       `json:"C2"`
	Tolerance     float64                       `json:"Tolerance"`
	MaxIterations int                           `json:"MaxIterations"`
	BCs           map[string]map[string]float64 `json:"BCs"` // First key is wall name, second is u, v or p
}

func (ip *InputParametersCavity) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	return ip.validateBCs()
}

func (ip *InputParametersCavity) validateBCs() (err error) {
	var (
		named [types.NumWalls]string
	)
	for wallName, values := range ip.BCs {
		var w types.Wall
		if w, err = types.ParseWall(wallName); err != nil {
			return
		}
		// Aliases of one wall would override each other in map order
		if named[w] != "" {
			return fmt.Errorf("wall %s is named twice, as %q and %q", w, named[w], wallName)
		}
		named[w] = wallName
		for comp := range values {
			switch comp {
			case "u", "v", "p":
			default:
				return fmt.Errorf("wall %s: unknown component %q, must be u, v or p", wallName, comp)
			}
		}
	}
	return
}

// WallValues returns the per-wall values for component comp, starting from
// defaults and overriding any wall named in the input file.
func (ip *InputParametersCavity) WallValues(comp string, defaults [types.NumWalls]float64) (
	vals [types.NumWalls]float64) {
	vals = defaults
	for wallName, values := range ip.BCs {
		w, err := types.ParseWall(wallName)
		if err != nil {
			continue
		}
		if val, present := values[comp]; present {
			vals[w] = val
		}
	}
	return
}

func (ip *InputParametersCavity) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.2f\t\t= Re\n", ip.Re)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= C2\n", ip.C2)
	fmt.Printf("%8.2e\t\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("[%d]\t\t\t= Max Iterations\n", ip.MaxIterations)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
