package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/louisbranch/astrokit/internal/calendar"
	"github.com/louisbranch/astrokit/internal/platform/id"
)

const (
	profilesSelectedKey = "profiles_selected"
	profilesIDsKey      = "profiles_ids"
	profileKeyPrefix    = "profiles_"

	profileIDPrefix    = "p_"
	defaultProfileName = "Profile"
)

// Profile is a saved person and their birth date.
type Profile struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Date calendar.Date `json:"date"`
}

// DefaultProfiles is the set a fresh store is seeded with. The first one
// starts selected.
func DefaultProfiles() []Profile {
	return []Profile{
		{ID: "me", Name: "Me", Date: calendar.NewDate(1990, 10, 25)},
		{ID: "partner", Name: "Partner", Date: calendar.NewDate(1990, 1, 1)},
		{ID: "child", Name: "Child", Date: calendar.NewDate(2018, 1, 1)},
	}
}

// storedProfile is the value kept under profiles_<id>.
type storedProfile struct {
	Name string        `json:"name"`
	Date calendar.Date `json:"date"`
}

// Profiles keeps an ordered list of profiles and which one is selected.
type Profiles struct {
	kv    KeyValueStore
	mu    sync.Mutex
	newID func() (string, error)
}

// NewProfiles creates a profile store on kv.
func NewProfiles(kv KeyValueStore) *Profiles {
	return &Profiles{
		kv: kv,
		newID: func() (string, error) {
			value, err := id.NewID()
			if err != nil {
				return "", err
			}
			return profileIDPrefix + value, nil
		},
	}
}

// EnsureSeeded writes the default profiles when no profile is stored.
func (p *Profiles) EnsureSeeded(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ensureSeeded(ctx)
}

func (p *Profiles) ensureSeeded(ctx context.Context) error {
	ids, err := getKeys(ctx, p.kv, profilesIDsKey)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		return nil
	}

	seeded := DefaultProfiles()
	ids = make([]string, 0, len(seeded))
	for _, profile := range seeded {
		if err := p.save(ctx, profile); err != nil {
			return err
		}
		ids = append(ids, profile.ID)
	}
	if err := putJSON(ctx, p.kv, profilesIDsKey, ids); err != nil {
		return err
	}
	return p.kv.PutString(ctx, profilesSelectedKey, seeded[0].ID)
}

// List returns the stored profiles in display order, seeding first if
// needed. Entries whose value is missing are skipped.
func (p *Profiles) List(ctx context.Context) ([]Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.list(ctx)
}

func (p *Profiles) list(ctx context.Context) ([]Profile, error) {
	if err := p.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	ids, err := getKeys(ctx, p.kv, profilesIDsKey)
	if err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(ids))
	for _, id := range ids {
		profile, err := p.load(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// Get returns one profile by id, seeding first if needed.
func (p *Profiles) Get(ctx context.Context, id string) (Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureSeeded(ctx); err != nil {
		return Profile{}, err
	}
	return p.load(ctx, strings.TrimSpace(id))
}

// SelectedID returns the selected profile id, if any was stored.
func (p *Profiles) SelectedID(ctx context.Context) (string, bool, error) {
	return p.kv.GetString(ctx, profilesSelectedKey)
}

// Select marks id as the selected profile.
func (p *Profiles) Select(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureSeeded(ctx); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if _, err := p.load(ctx, id); err != nil {
		return err
	}
	return p.kv.PutString(ctx, profilesSelectedKey, id)
}

// SelectedOrFirst returns the selected profile, or the first profile when
// the selection is unset or stale.
func (p *Profiles) SelectedOrFirst(ctx context.Context) (Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	profiles, err := p.list(ctx)
	if err != nil {
		return Profile{}, err
	}
	if len(profiles) == 0 {
		return Profile{}, ErrNotFound
	}
	selected, _, err := p.kv.GetString(ctx, profilesSelectedKey)
	if err != nil {
		return Profile{}, err
	}
	for _, profile := range profiles {
		if profile.ID == selected {
			return profile, nil
		}
	}
	return profiles[0], nil
}

// Add stores a new profile at the front of the list and selects it. A
// blank name becomes "Profile".
func (p *Profiles) Add(ctx context.Context, name string, date calendar.Date) (Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureSeeded(ctx); err != nil {
		return Profile{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultProfileName
	}
	newID, err := p.newID()
	if err != nil {
		return Profile{}, err
	}
	profile := Profile{ID: newID, Name: name, Date: date}

	ids, err := getKeys(ctx, p.kv, profilesIDsKey)
	if err != nil {
		return Profile{}, err
	}
	ids = append([]string{profile.ID}, ids...)

	if err := p.save(ctx, profile); err != nil {
		return Profile{}, err
	}
	if err := putJSON(ctx, p.kv, profilesIDsKey, ids); err != nil {
		return Profile{}, err
	}
	if err := p.kv.PutString(ctx, profilesSelectedKey, profile.ID); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Rename changes a profile's name. A blank name leaves it unchanged.
func (p *Profiles) Rename(ctx context.Context, id string, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureSeeded(ctx); err != nil {
		return err
	}
	profile, err := p.load(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	profile.Name = name
	return p.save(ctx, profile)
}

// UpdateDate changes a profile's birth date.
func (p *Profiles) UpdateDate(ctx context.Context, id string, date calendar.Date) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureSeeded(ctx); err != nil {
		return err
	}
	profile, err := p.load(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	profile.Date = date
	return p.save(ctx, profile)
}

// Delete removes a profile. Deleting the selected profile selects the
// first remaining one.
func (p *Profiles) Delete(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureSeeded(ctx); err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	ids, err := getKeys(ctx, p.kv, profilesIDsKey)
	if err != nil {
		return err
	}
	remaining := make([]string, 0, len(ids))
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		remaining = append(remaining, existing)
	}
	if !found {
		return ErrNotFound
	}

	if err := putJSON(ctx, p.kv, profilesIDsKey, remaining); err != nil {
		return err
	}
	if err := removeAll(ctx, p.kv, profileKeyPrefix+id); err != nil {
		return err
	}

	selected, _, err := p.kv.GetString(ctx, profilesSelectedKey)
	if err != nil {
		return err
	}
	if selected == id && len(remaining) > 0 {
		return p.kv.PutString(ctx, profilesSelectedKey, remaining[0])
	}
	return nil
}

func (p *Profiles) save(ctx context.Context, profile Profile) error {
	return putJSON(ctx, p.kv, profileKeyPrefix+profile.ID, storedProfile{Name: profile.Name, Date: profile.Date})
}

func (p *Profiles) load(ctx context.Context, id string) (Profile, error) {
	if id == "" {
		return Profile{}, ErrNotFound
	}
	raw, ok, err := p.kv.GetString(ctx, profileKeyPrefix+id)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", id, err)
	}
	if !ok {
		return Profile{}, ErrNotFound
	}
	// Unreadable values, index keys included, are not profiles.
	var stored storedProfile
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return Profile{}, ErrNotFound
	}
	return Profile{ID: id, Name: stored.Name, Date: stored.Date}, nil
}
