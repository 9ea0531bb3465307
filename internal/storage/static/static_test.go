package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/portfolio-api/internal/domain"
)

func newStorage(t *testing.T) *Storage {
	t.Helper()
	storage, err := New()
	require.NoError(t, err, "embedded dataset must produce valid entities")
	return storage
}

func TestExperienceRepository(t *testing.T) {
	ctx := context.Background()
	storage := newStorage(t)
	repo := storage.Experiences

	t.Run("FindAll sorted by start date descending", func(t *testing.T) {
		experiences, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, experiences)

		for i := 1; i < len(experiences); i++ {
			prev, curr := experiences[i-1], experiences[i]
			assert.False(t, curr.DateRange.Start.After(prev.DateRange.Start),
				"experience %s starts after preceding %s", curr.ID, prev.ID)
		}
	})

	t.Run("FindAll returns a defensive copy", func(t *testing.T) {
		first, err := repo.FindAll(ctx)
		require.NoError(t, err)
		first[0] = domain.Experience{ID: "mutated"}

		second, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", second[0].ID)
	})

	t.Run("FindByID", func(t *testing.T) {
		experience, err := repo.FindByID(ctx, "exp-datastream")
		require.NoError(t, err)
		require.NotNil(t, experience)
		assert.Equal(t, "Datastream Labs", experience.Company)
	})

	t.Run("FindByID miss returns nil not error", func(t *testing.T) {
		experience, err := repo.FindByID(ctx, "exp-missing")
		require.NoError(t, err)
		assert.Nil(t, experience)
	})

	t.Run("FindCurrent returns the ongoing position", func(t *testing.T) {
		current, err := repo.FindCurrent(ctx)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.True(t, current.IsCurrent())
		assert.Equal(t, "exp-datastream", current.ID)
	})

	t.Run("FindByTechnology exact case-sensitive match", func(t *testing.T) {
		matched, err := repo.FindByTechnology(ctx, "Python")
		require.NoError(t, err)
		require.NotEmpty(t, matched)
		for _, experience := range matched {
			assert.Contains(t, experience.Technologies, "Python")
		}

		lower, err := repo.FindByTechnology(ctx, "python")
		require.NoError(t, err)
		assert.Empty(t, lower)
	})

	t.Run("FindByTechnology absent string returns empty", func(t *testing.T) {
		matched, err := repo.FindByTechnology(ctx, "COBOL")
		require.NoError(t, err)
		assert.Empty(t, matched)
	})
}

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	repo := newStorage(t).Projects

	t.Run("FindFeatured", func(t *testing.T) {
		featured, err := repo.FindFeatured(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, featured)
		for _, project := range featured {
			assert.True(t, project.Featured)
		}
	})

	t.Run("FindByType", func(t *testing.T) {
		oss, err := repo.FindByType(ctx, domain.ProjectTypeOSS)
		require.NoError(t, err)
		require.NotEmpty(t, oss)
		for _, project := range oss {
			assert.True(t, project.IsOpenSource())
		}
	})

	t.Run("FindByTechnology", func(t *testing.T) {
		matched, err := repo.FindByTechnology(ctx, "Kafka")
		require.NoError(t, err)
		require.NotEmpty(t, matched)
		for _, project := range matched {
			assert.Contains(t, project.Technologies, "Kafka")
		}
	})

	t.Run("FindByID miss", func(t *testing.T) {
		project, err := repo.FindByID(ctx, "proj-nope")
		require.NoError(t, err)
		assert.Nil(t, project)
	})
}

func TestSkillRepository(t *testing.T) {
	ctx := context.Background()
	repo := newStorage(t).Skills

	t.Run("FindByCategory", func(t *testing.T) {
		bigdata, err := repo.FindByCategory(ctx, domain.CategoryBigData)
		require.NoError(t, err)
		require.NotEmpty(t, bigdata)
		for _, skill := range bigdata {
			assert.Equal(t, domain.CategoryBigData, skill.Category)
		}
	})

	t.Run("FindAdvanced only advanced or expert", func(t *testing.T) {
		advanced, err := repo.FindAdvanced(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, advanced)
		for _, skill := range advanced {
			assert.True(t, skill.IsAdvanced())
		}
	})

	t.Run("Categories deduplicated in insertion order", func(t *testing.T) {
		categories, err := repo.Categories(ctx)
		require.NoError(t, err)

		seen := make(map[domain.SkillCategory]bool)
		for _, category := range categories {
			assert.False(t, seen[category], "category %s duplicated", category)
			seen[category] = true
		}
		// dataset lists languages first
		require.NotEmpty(t, categories)
		assert.Equal(t, domain.CategoryLanguages, categories[0])
	})
}

func TestMalformedRecordFailsFast(t *testing.T) {
	_, err := domain.NewExperience(domain.ExperienceData{ID: "x"})
	require.Error(t, err, "repository construction propagates entity validation")
}
