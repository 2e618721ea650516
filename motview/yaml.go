package motview

import (
	"io"

	"gopkg.in/yaml.v3"

	"badc0de.net/pkg/go-afteralive/mot"
)

type yamlPart struct {
	ID         uint8           `yaml:"id"`
	Directions map[uint8]int32 `yaml:"directions,omitempty"`
	Distances  map[uint8]int32 `yaml:"distances,omitempty"`
	Angles     map[uint8]int16 `yaml:"angles,omitempty"`
	Pictures   map[uint8]int16 `yaml:"pictures,omitempty"`
	ScaleX     map[uint8]int16 `yaml:"scale_x,omitempty"`
	ScaleY     map[uint8]int16 `yaml:"scale_y,omitempty"`
}

type yamlMotion struct {
	StepCount int              `yaml:"step_count"`
	KeyFrames map[uint8]uint16 `yaml:"key_frames,omitempty"`
	PosX      map[uint8]int16  `yaml:"pos_x,omitempty"`
	PosY      map[uint8]int16  `yaml:"pos_y,omitempty"`
	Parts     []yamlPart       `yaml:"parts,omitempty"`
}

// WriteYAML writes the motion as a YAML document. Parts are listed in
// ascending ID order; empty channels are left out.
func WriteYAML(w io.Writer, m *mot.Motion) error {
	doc := yamlMotion{
		StepCount: m.StepCount,
		KeyFrames: m.KeyFrames,
		PosX:      m.PosX,
		PosY:      m.PosY,
	}
	for _, id := range m.PartIDs() {
		p := m.Parts[id]
		doc.Parts = append(doc.Parts, yamlPart{
			ID:         p.ID,
			Directions: p.Directions,
			Distances:  p.Distances,
			Angles:     p.Angles,
			Pictures:   p.Pictures,
			ScaleX:     p.ScaleX,
			ScaleY:     p.ScaleY,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
