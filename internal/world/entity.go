package world

import (
	"fmt"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
)

// Entity is a billboard sprite standing in the map. SceneX/SceneZ are the
// camera-relative coordinates recomputed by the compositor every frame;
// they are scratch state, never carried across frames.
type Entity struct {
	Kind  string
	Pos   geom.Vector2
	HalfW float64 // half width of the footprint in world units
	HalfH float64 // half height; the billboard stands 2*HalfH tall

	SceneX float64
	SceneZ float64
}

// markerKinds maps a map rune to the entity kind it spawns.
var markerKinds = map[rune]string{
	'b': "barrel",
	'p': "pillar",
}

// templates carry the per-kind dimensions entities are stamped from.
var templates = map[string]Entity{
	"barrel": {Kind: "barrel", HalfW: 0.3, HalfH: 0.3},
	"pillar": {Kind: "pillar", HalfW: 0.2, HalfH: 0.5},
}

// SpawnFromMarkers stamps one entity per marker from its kind's template,
// placed at the marker cell's center. The returned list lives for the whole
// process; entities are never destroyed at runtime.
func SpawnFromMarkers(markers []Marker) ([]*Entity, error) {
	entities := make([]*Entity, 0, len(markers))
	for _, m := range markers {
		tmpl, ok := templates[m.Kind]
		if !ok {
			return nil, fmt.Errorf("no entity template for kind %q", m.Kind)
		}
		e := &Entity{}
		if err := copier.Copy(e, &tmpl); err != nil {
			return nil, fmt.Errorf("spawn %s at (%d,%d): %w", m.Kind, m.Col, m.Row, err)
		}
		e.Pos = geom.Vector2{X: float64(m.Col) + 0.5, Y: float64(m.Row) + 0.5}
		entities = append(entities, e)
	}
	return entities, nil
}
