package services

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tperticaro.dev/internal/models"
)

func testCatalog() *models.ProjectList {
	return &models.ProjectList{Projects: []models.Project{
		{ID: 1, Title: "Angular en AWS", Tags: []string{"Básico"}},
		{ID: 2, Title: "Tenis", Tags: []string{"Avanzado"}},
		{ID: 3, Title: "Docker en AWS", Tags: []string{"Avanzado"}},
		{ID: 4, Title: "Kubernetes en AWS", Tags: []string{"Profesional"}},
	}}
}

func ids(projects []*models.Project) []int {
	out := make([]int, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestFilterAllReturnsCatalog(t *testing.T) {
	svc := NewProjectService(testCatalog())

	got := svc.Filter(models.FilterAll)
	if diff := cmp.Diff([]int{1, 2, 3, 4}, ids(got)); diff != "" {
		t.Errorf("filter all mismatch (-want +got):\n%s", diff)
	}
	for i, p := range got {
		assert.Same(t, svc.GetAll()[i], p)
	}
}

func TestFilterByTagPreservesOrder(t *testing.T) {
	svc := NewProjectService(testCatalog())

	got := svc.Filter("Avanzado")
	if diff := cmp.Diff([]int{2, 3}, ids(got)); diff != "" {
		t.Errorf("filter Avanzado mismatch (-want +got):\n%s", diff)
	}

	restored := svc.Filter(models.FilterAll)
	assert.Len(t, restored, 4)
}

func TestFilterIsSubsequenceForEveryTag(t *testing.T) {
	svc := NewProjectService(testCatalog())
	all := svc.GetAll()

	for _, tag := range append(svc.Tags(), "desconocido", "") {
		got := svc.Filter(tag)
		j := 0
		for _, p := range all {
			if j < len(got) && got[j] == p {
				j++
			}
			if p.HasTag(tag) {
				assert.Contains(t, got, p, "tag %q", tag)
			}
		}
		assert.Equal(t, len(got), j, "tag %q: result is not an ordered subsequence", tag)
	}
}

func TestFilterUnknownTagIsEmpty(t *testing.T) {
	got := FilterProjects(NewProjectService(testCatalog()).GetAll(), "Nada")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterUntaggedProjectMatchesNoTag(t *testing.T) {
	list := &models.ProjectList{Projects: []models.Project{{ID: 9, Title: "Sin tags"}}}
	svc := NewProjectService(list)

	assert.Empty(t, svc.Filter("Básico"))
	assert.Len(t, svc.Filter(models.FilterAll), 1)
}

func TestGetByID(t *testing.T) {
	svc := NewProjectService(testCatalog())

	p, err := svc.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Docker en AWS", p.Title)

	_, err = svc.GetByID(42)
	assert.True(t, errors.Is(err, ErrProjectNotFound))
}

func TestTagsFirstSeenOrder(t *testing.T) {
	svc := NewProjectService(testCatalog())
	assert.Equal(t, []string{"Básico", "Avanzado", "Profesional"}, svc.Tags())
}

func TestTechnologiesFirstSeenOrder(t *testing.T) {
	svc := NewProjectService(&models.ProjectList{Projects: []models.Project{
		{ID: 1, Title: "a", Technologies: []string{"Docker", "EC2"}},
		{ID: 2, Title: "b", Technologies: []string{"EC2", "Kubernetes"}},
		{ID: 3, Title: "c"},
	}})
	assert.Equal(t, []string{"Docker", "EC2", "Kubernetes"}, svc.Technologies())
}
