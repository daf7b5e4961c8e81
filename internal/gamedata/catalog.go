// Package gamedata holds the weapon, equipment and psychic power catalog as
// embedded JSON. The catalog is reference data: the core engines never load
// it themselves, they only price the items callers hand them.
package gamedata

import (
	"embed"
	"encoding/json"
	"sort"

	"github.com/weirdoworks/warband-bot/internal/entities"
	wberr "github.com/weirdoworks/warband-bot/internal/errors"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog resolves item IDs to their immutable definitions.
type Catalog struct {
	weapons   map[string]entities.Weapon
	equipment map[string]entities.Equipment
	powers    map[string]entities.PsychicPower
}

// Load parses the embedded catalog files.
func Load() (*Catalog, error) {
	c := &Catalog{
		weapons:   make(map[string]entities.Weapon),
		equipment: make(map[string]entities.Equipment),
		powers:    make(map[string]entities.PsychicPower),
	}

	var weapons []entities.Weapon
	if err := loadFile("data/weapons.json", &weapons); err != nil {
		return nil, err
	}
	for _, w := range weapons {
		c.weapons[w.ID] = w
	}

	var equipment []entities.Equipment
	if err := loadFile("data/equipment.json", &equipment); err != nil {
		return nil, err
	}
	for _, e := range equipment {
		c.equipment[e.ID] = e
	}

	var powers []entities.PsychicPower
	if err := loadFile("data/powers.json", &powers); err != nil {
		return nil, err
	}
	for _, p := range powers {
		c.powers[p.ID] = p
	}

	return c, nil
}

func loadFile(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return wberr.Wrapf(err, "failed to read catalog file %s", name)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return wberr.Wrapf(err, "failed to parse catalog file %s", name)
	}
	return nil
}

// Weapon resolves a weapon by ID.
func (c *Catalog) Weapon(id string) (entities.Weapon, error) {
	w, ok := c.weapons[id]
	if !ok {
		return entities.Weapon{}, wberr.NotFoundf("weapon '%s' not found", id)
	}
	return w, nil
}

// Equipment resolves an equipment item by ID.
func (c *Catalog) Equipment(id string) (entities.Equipment, error) {
	e, ok := c.equipment[id]
	if !ok {
		return entities.Equipment{}, wberr.NotFoundf("equipment '%s' not found", id)
	}
	return e, nil
}

// PsychicPower resolves a psychic power by ID.
func (c *Catalog) PsychicPower(id string) (entities.PsychicPower, error) {
	p, ok := c.powers[id]
	if !ok {
		return entities.PsychicPower{}, wberr.NotFoundf("psychic power '%s' not found", id)
	}
	return p, nil
}

// Weapons lists every weapon sorted by name.
func (c *Catalog) Weapons() []entities.Weapon {
	out := make([]entities.Weapon, 0, len(c.weapons))
	for _, w := range c.weapons {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// EquipmentList lists every equipment item sorted by name.
func (c *Catalog) EquipmentList() []entities.Equipment {
	out := make([]entities.Equipment, 0, len(c.equipment))
	for _, e := range c.equipment {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PsychicPowers lists every power sorted by name.
func (c *Catalog) PsychicPowers() []entities.PsychicPower {
	out := make([]entities.PsychicPower, 0, len(c.powers))
	for _, p := range c.powers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
