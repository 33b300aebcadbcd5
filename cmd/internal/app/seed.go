package app

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/service"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadCatalog reads a JSON array of appointment options from path.
func LoadCatalog(path string) ([]*entity.AppointmentOption, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var opts []*entity.AppointmentOption
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(opts))
	for i, opt := range opts {
		opt.Name = strings.TrimSpace(opt.Name)
		if opt.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if _, dup := seen[opt.Name]; dup {
			return nil, fmt.Errorf("catalog lists %q twice", opt.Name)
		}
		seen[opt.Name] = struct{}{}
		if opt.Slots == nil {
			opt.Slots = []string{}
		}
	}
	return opts, nil
}

// Seed upserts the catalog at path into store and reports how many options
// were written.
func Seed(ctx context.Context, store *Store, path string) (int, error) {
	opts, err := LoadCatalog(path)
	if err != nil {
		return 0, err
	}
	return service.NewAppointmentService(store.Options, store.Bookings).SeedOptions(ctx, opts)
}
