package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noor-latif/foliocms/internal/models"
)

func testContainer() *Container {
	return New(Config{
		Password:       "IamNerd",
		RecoveryAnswer: "pizza",
	})
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	c := testContainer()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p := c.AddProject(models.Project{Title: "p"})
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestAddOrdering(t *testing.T) {
	c := testContainer()

	first := c.AddExperience(models.Experience{Role: "first"})
	second := c.AddExperience(models.Experience{Role: "second"})

	exps := c.Snapshot().Experience
	require.GreaterOrEqual(t, len(exps), 2)
	// Most recent add comes first
	assert.Equal(t, second.ID, exps[0].ID)
	assert.Equal(t, first.ID, exps[1].ID)

	p1 := c.AddProject(models.Project{Title: "one"})
	p2 := c.AddProject(models.Project{Title: "two"})

	projects := c.Snapshot().Projects
	require.GreaterOrEqual(t, len(projects), 2)
	// Projects append oldest-first
	assert.Equal(t, p1.ID, projects[len(projects)-2].ID)
	assert.Equal(t, p2.ID, projects[len(projects)-1].ID)
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	c := testContainer()
	c.AddProject(models.Project{Title: "keep"})
	before := c.Snapshot()

	c.DeleteProject("does-not-exist")
	c.DeleteExperience("does-not-exist")
	c.DeleteEducation("does-not-exist")

	assert.Equal(t, before, c.Snapshot())
}

func TestUpdateTargetsCorrectEntity(t *testing.T) {
	c := testContainer()
	c.Restore(models.PortfolioData{})

	a := c.AddProject(models.Project{Title: "a", Tags: []string{"go"}})
	b := c.AddProject(models.Project{Title: "b", Tags: []string{"sql"}})
	d := c.AddProject(models.Project{Title: "d", Tags: []string{"css"}})

	b.Description = "updated"
	c.UpdateProject(b)

	projects := c.Snapshot().Projects
	require.Len(t, projects, 3)
	assert.Equal(t, a.ID, projects[0].ID)
	assert.Empty(t, projects[0].Description)
	assert.Equal(t, "updated", projects[1].Description)
	assert.Equal(t, []string{"sql"}, projects[1].Tags)
	assert.Equal(t, d.ID, projects[2].ID)
	assert.Empty(t, projects[2].Description)
}

func TestUpdateAbsentIDIsNoOp(t *testing.T) {
	c := testContainer()
	before := c.Snapshot()

	c.UpdateExperience(models.Experience{ID: "nope", Role: "ghost"})

	assert.Equal(t, before, c.Snapshot())
}

func TestThemePatchIsShallow(t *testing.T) {
	c := testContainer()
	before := c.Snapshot().Theme

	url := "https://example.com/cv.pdf"
	c.UpdateThemeSettings(ThemePatch{ResumeURL: &url})

	after := c.Snapshot().Theme
	assert.Equal(t, url, after.ResumeURL)
	assert.Equal(t, before.Colors, after.Colors)
	assert.Equal(t, before.HeroBackground, after.HeroBackground)
	assert.Equal(t, before.BackgroundPattern, after.BackgroundPattern)
	assert.Equal(t, before.GradientText, after.GradientText)
}

func TestSettingsPatchIsShallow(t *testing.T) {
	c := testContainer()
	before := c.Snapshot().Settings

	layout := "minimal"
	c.UpdateAppSettings(SettingsPatch{Layout: &layout})

	after := c.Snapshot().Settings
	assert.Equal(t, "minimal", after.Layout)
	assert.Equal(t, before.ThemeMode, after.ThemeMode)
	assert.Equal(t, before.UIStyle, after.UIStyle)
}

func TestLoginAndRecovery(t *testing.T) {
	c := testContainer()

	assert.False(t, c.Login("wrong"))
	assert.False(t, c.Authenticated())

	assert.True(t, c.Login("IamNerd"))
	assert.True(t, c.Authenticated())

	c.Logout()
	assert.False(t, c.Authenticated())

	ok, password := c.RecoverPassword("burgers")
	assert.False(t, ok)
	assert.Empty(t, password)
	assert.False(t, c.Authenticated())

	ok, password = c.RecoverPassword("pizza")
	assert.True(t, ok)
	assert.Equal(t, "IamNerd", password)
	assert.True(t, c.Authenticated())
}

func TestRecoveryDisabledInHashMode(t *testing.T) {
	// bcrypt hash of "IamNerd" is irrelevant here; the point is that no
	// plaintext secret exists to disclose.
	c := New(Config{PasswordHash: "$2a$10$abcdefghijklmnopqrstuv", RecoveryAnswer: "pizza"})

	ok, password := c.RecoverPassword("pizza")
	assert.False(t, ok)
	assert.Empty(t, password)
}

func TestSubmissionsAppendOnly(t *testing.T) {
	c := testContainer()

	c.AddSubmission(models.ContactSubmission{Name: "a", Email: "a@x.se", Message: "hi"})
	c.AddSubmission(models.ContactSubmission{Name: "b", Email: "b@x.se", Message: "hej"})
	c.AddSubmission(models.ContactSubmission{Name: "c", Email: "c@x.se", Message: "hello"})

	subs := c.Submissions()
	require.Len(t, subs, 3)
	assert.Equal(t, "a", subs[0].Name)
	assert.Equal(t, "b", subs[1].Name)
	assert.Equal(t, "c", subs[2].Name)
	for i := 1; i < len(subs); i++ {
		assert.False(t, subs[i].SubmittedAt.Before(subs[i-1].SubmittedAt))
	}
	assert.WithinDuration(t, time.Now(), subs[2].SubmittedAt, time.Minute)
}

func TestSnapshotDoesNotAliasLiveState(t *testing.T) {
	c := testContainer()
	c.AddProject(models.Project{Title: "orig", Tags: []string{"go"}})

	snap := c.Snapshot()
	snap.Projects[len(snap.Projects)-1].Tags[0] = "mutated"
	snap.Hero.Name = "mutated"

	fresh := c.Snapshot()
	assert.Equal(t, "go", fresh.Projects[len(fresh.Projects)-1].Tags[0])
	assert.NotEqual(t, "mutated", fresh.Hero.Name)
}

func TestObserverFiresOnContentMutation(t *testing.T) {
	c := testContainer()

	var fired int
	c.Subscribe(func() { fired++ })

	c.UpdateHero(models.HeroContent{Name: "x"})
	c.AddProject(models.Project{Title: "p"})
	assert.Equal(t, 2, fired)

	// Auth and submissions do not notify
	c.Login("IamNerd")
	c.AddSubmission(models.ContactSubmission{Name: "n", Email: "n@x.se", Message: "m"})
	assert.Equal(t, 2, fired)
}
