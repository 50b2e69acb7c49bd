package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type kvProfileRepo struct {
	store        kv.Store
	atomicWrites bool
	logger       logger.Logger
}

// NewKVProfileRepo stores the profile across the partition keys in
// profile.PartitionKeys. With atomicWrites set and a store implementing
// kv.Batcher, Save writes all partitions in one transaction; otherwise each
// partition is written independently and concurrently.
func NewKVProfileRepo(store kv.Store, atomicWrites bool, log logger.Logger) profile.Repository {
	return &kvProfileRepo{store: store, atomicWrites: atomicWrites, logger: log}
}

func encodePartitions(p *profile.Profile) (map[string]string, error) {
	normalized := *p
	normalized.Normalize()

	values := map[string]any{
		profile.KeyBasicInfo:    normalized.BasicInfo(),
		profile.KeyEducation:    normalized.Education,
		profile.KeySkills:       normalized.Skills,
		profile.KeyProjects:     normalized.Projects,
		profile.KeyTestimonials: normalized.Testimonials,
		profile.KeyCertificates: normalized.Certificates,
		profile.KeyContactInfo:  normalized.ContactInfo,
	}

	out := make(map[string]string, len(values))
	for key, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal partition %s: %w", key, err)
		}
		out[key] = string(b)
	}
	return out, nil
}

func (r *kvProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	entries, err := encodePartitions(p)
	if err != nil {
		return apperror.NewPersistence("failed to serialize profile", err)
	}

	if batcher, ok := r.store.(kv.Batcher); ok && r.atomicWrites {
		if err := batcher.SetMany(ctx, entries); err != nil {
			r.logger.Error("Error saving profile data", err, zap.Bool("atomic", true))
			return apperror.NewPersistence("failed to save profile data", err)
		}
		r.logger.Info("Profile data saved successfully", zap.Bool("atomic", true))
		return nil
	}

	// Partitions are independent: a failure does not stop or roll back the others.
	var g errgroup.Group
	for key, value := range entries {
		g.Go(func() error {
			return r.store.Set(ctx, key, value)
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Error("Error saving profile data", err, zap.Bool("atomic", false))
		return apperror.NewPersistence("failed to save profile data", err)
	}

	r.logger.Info("Profile data saved successfully", zap.Bool("atomic", false))
	return nil
}

type partitionRead struct {
	raw    string
	found  bool
	failed bool
}

func (r *kvProfileRepo) Load(ctx context.Context) (*profile.Profile, profile.LoadState) {
	reads := make([]partitionRead, len(profile.PartitionKeys))

	var g errgroup.Group
	for i, key := range profile.PartitionKeys {
		g.Go(func() error {
			raw, found, err := r.store.Get(ctx, key)
			if err != nil {
				r.logger.Warn("Failed to read profile partition, using empty default",
					zap.String("key", key), zap.Error(err))
				reads[i] = partitionRead{failed: true}
				return nil
			}
			reads[i] = partitionRead{raw: raw, found: found}
			return nil
		})
	}
	_ = g.Wait()

	p := profile.Empty()
	anyFound, anyFailed := false, false
	for i, key := range profile.PartitionKeys {
		read := reads[i]
		anyFailed = anyFailed || read.failed
		if !read.found {
			continue
		}
		anyFound = true

		var err error
		switch key {
		case profile.KeyBasicInfo:
			var basic profile.BasicInfo
			if err = decodeStored(read.raw, &basic); err == nil {
				p.SetBasicInfo(basic)
			}
		case profile.KeyEducation:
			err = decodeStored(read.raw, &p.Education)
		case profile.KeySkills:
			err = decodeStored(read.raw, &p.Skills)
		case profile.KeyProjects:
			err = decodeStored(read.raw, &p.Projects)
		case profile.KeyTestimonials:
			err = decodeStored(read.raw, &p.Testimonials)
		case profile.KeyCertificates:
			err = decodeStored(read.raw, &p.Certificates)
		case profile.KeyContactInfo:
			err = decodeStored(read.raw, &p.ContactInfo)
		}
		if err != nil {
			r.logger.Warn("Malformed profile partition, using empty default",
				zap.String("key", key), zap.Error(err))
		}
	}
	p.Normalize()

	state := profile.LoadEmpty
	switch {
	case anyFailed:
		state = profile.LoadDegraded
	case anyFound:
		state = profile.LoadFound
	}
	r.logger.Debug("Profile data loaded", zap.Stringer("state", state))
	return p, state
}

func (r *kvProfileRepo) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, profile.PartitionKeys...); err != nil {
		r.logger.Error("Error clearing profile data", err)
		return apperror.NewPersistence("failed to clear profile data", err)
	}
	r.logger.Info("Profile data cleared successfully")
	return nil
}
