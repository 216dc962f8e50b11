package astrokit

import (
	"context"

	"github.com/louisbranch/astrokit/internal/calendar"
	"github.com/louisbranch/astrokit/internal/storage"
)

type profilesView struct {
	Selected string            `json:"selected"`
	Profiles []storage.Profile `json:"profiles"`
}

// profiles manages saved profiles: list, add, rename, date, delete and
// select. Every action prints the resulting list.
func (a *app) profiles(ctx context.Context, args []string) error {
	action := "list"
	if len(args) > 0 {
		action, args = args[0], args[1:]
	}

	kv, err := a.kv()
	if err != nil {
		return err
	}
	profiles := storage.NewProfiles(kv)
	if err := profiles.EnsureSeeded(ctx); err != nil {
		return err
	}

	fs := newFlagSet("profiles " + action)
	id := fs.String("id", "", "profile id")
	name := fs.String("name", "", "profile name")
	date := fs.String("date", "", "birth date YYYY-MM-DD")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	switch action {
	case "list":
	case "add":
		if err := requireFlag("date", *date); err != nil {
			return err
		}
		birth, err := calendar.ParseDate(*date)
		if err != nil {
			return err
		}
		if _, err := profiles.Add(ctx, *name, birth); err != nil {
			return err
		}
	case "rename":
		if err := requireFlag("id", *id); err != nil {
			return err
		}
		if err := profiles.Rename(ctx, *id, *name); err != nil {
			return profileErr(*id, err)
		}
	case "date":
		if err := requireFlag("id", *id); err != nil {
			return err
		}
		if err := requireFlag("date", *date); err != nil {
			return err
		}
		birth, err := calendar.ParseDate(*date)
		if err != nil {
			return err
		}
		if err := profiles.UpdateDate(ctx, *id, birth); err != nil {
			return profileErr(*id, err)
		}
	case "delete":
		if err := requireFlag("id", *id); err != nil {
			return err
		}
		if err := profiles.Delete(ctx, *id); err != nil {
			return profileErr(*id, err)
		}
	case "select":
		if err := requireFlag("id", *id); err != nil {
			return err
		}
		if err := profiles.Select(ctx, *id); err != nil {
			return profileErr(*id, err)
		}
	default:
		return usagef("unknown profiles action %q", action)
	}

	list, err := profiles.List(ctx)
	if err != nil {
		return err
	}
	selected, err := profiles.SelectedOrFirst(ctx)
	if err != nil {
		return profileErr("", err)
	}
	return a.writeJSON(profilesView{Selected: selected.ID, Profiles: list})
}
