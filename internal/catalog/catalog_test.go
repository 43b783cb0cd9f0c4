package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/job-matcher/internal/matching"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	require.Equal(t, 5, c.Len())

	for i, job := range c.Jobs() {
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.RequiredSkills)
		assert.Equal(t, string(rune('1'+i)), job.ID)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	c := Default()

	job, err := c.Find("2")
	require.NoError(t, err)
	assert.Equal(t, "QA ENGINEER", job.Title)

	job, err = c.Find("  web development ")
	require.NoError(t, err)
	assert.Equal(t, "5", job.ID)

	_, err = c.Find("astronaut")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestFindReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Default()
	job, err := c.Find("1")
	require.NoError(t, err)

	job.RequiredSkills[0] = "cobol"
	again, err := c.Find("1")
	require.NoError(t, err)
	assert.Equal(t, "JavaScript", again.RequiredSkills[0])
}

func TestFromRecords(t *testing.T) {
	t.Parallel()

	c := FromRecords([]map[string]any{
		{"id": "go-1", "title": "Go Developer", "required_skills": "go, kafka", "min_experience_years": "3"},
		{"title": "Support"},
	})

	require.Equal(t, 2, c.Len())
	jobs := c.Jobs()
	assert.Equal(t, matching.JobRequirement{
		ID:                 "go-1",
		Title:              "Go Developer",
		RequiredSkills:     []string{"go, kafka"},
		MinExperienceYears: 3,
	}, jobs[0])
	assert.Equal(t, "2", jobs[1].ID)
	assert.Empty(t, jobs[1].RequiredSkills)
}
