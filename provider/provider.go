// Package provider manages the directory of hosting services and their short display names.
package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/streamfmt/streamfmt/filesystem"
	"github.com/streamfmt/streamfmt/log"
	"github.com/streamfmt/streamfmt/where"
)

// Provider represents a hosting service that can report cache status for a stream.
type Provider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	IsCustom  bool   `json:"-"` // Declared in the user's providers file.
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{ID: "realdebrid", Name: "Real-Debrid", ShortName: "RD"},
		{ID: "alldebrid", Name: "AllDebrid", ShortName: "AD"},
		{ID: "premiumize", Name: "Premiumize", ShortName: "PM"},
		{ID: "debridlink", Name: "Debrid-Link", ShortName: "DL"},
		{ID: "torbox", Name: "TorBox", ShortName: "TB"},
		{ID: "offcloud", Name: "Offcloud", ShortName: "OC"},
		{ID: "putio", Name: "put.io", ShortName: "P.IO"},
		{ID: "easynews", Name: "Easynews", ShortName: "EN"},
		{ID: "easydebrid", Name: "EasyDebrid", ShortName: "ED"},
		{ID: "pikpak", Name: "PikPak", ShortName: "PKP"},
		{ID: "seedr", Name: "Seedr", ShortName: "SDR"},
	}
}

// Customs returns the providers declared in the user's providers file.
// A broken file is logged and treated as empty.
func Customs() []*Provider {
	providers, err := CustomProviders()
	if err != nil {
		log.Warn(err)
	}
	return providers
}

// CustomProviders reads the user's providers file. A missing file is not an error.
func CustomProviders() ([]*Provider, error) {
	path := where.Providers()

	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read providers file: %w", err)
	}

	var providers []*Provider
	if err := json.Unmarshal(content, &providers); err != nil {
		return nil, fmt.Errorf("parse providers file %s: %w", path, err)
	}

	for i, p := range providers {
		if p == nil || p.ID == "" {
			return nil, fmt.Errorf("providers file %s: entry %d has no id", path, i)
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		p.IsCustom = true
	}

	log.Debugf("loaded %d custom providers from %s", len(providers), path)
	return providers, nil
}

// All returns built-in and custom providers sorted by id. Custom entries replace
// built-ins with the same id.
func All() []*Provider {
	byID := lo.KeyBy(Builtins(), func(p *Provider) string { return p.ID })
	for _, p := range Customs() {
		byID[p.ID] = p
	}

	providers := lo.Values(byID)
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].ID < providers[j].ID
	})
	return providers
}

// Get finds a provider by id.
func Get(id string) (*Provider, bool) {
	return lo.Find(All(), func(p *Provider) bool {
		return p.ID == id
	})
}

// Suggest returns known ids that fuzzily match id, best first.
func Suggest(id string) []string {
	ids := lo.Map(All(), func(p *Provider, _ int) string { return p.ID })

	ranks := fuzzy.RankFindNormalizedFold(id, ids)
	sort.Sort(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string { return r.Target })
}

// Directory resolves provider ids to short names for rendering.
type Directory struct {
	byID map[string]*Provider
}

// NewDirectory indexes providers by id; later entries win.
func NewDirectory(providers []*Provider) *Directory {
	return &Directory{
		byID: lo.KeyBy(providers, func(p *Provider) string { return p.ID }),
	}
}

// Default returns a directory of built-in and custom providers.
func Default() *Directory {
	return NewDirectory(All())
}

// ShortName returns the short display name for id. Unknown ids and entries
// without a short name are absent.
func (d *Directory) ShortName(id string) mo.Option[string] {
	p, ok := d.byID[id]
	if !ok || p.ShortName == "" {
		return mo.None[string]()
	}
	return mo.Some(p.ShortName)
}

// Len returns the number of providers in the directory.
func (d *Directory) Len() int {
	return len(d.byID)
}
