package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-task-keeper/models"
)

func TestRenderTasks_KeepsOrder(t *testing.T) {
	out := renderTasks([]models.Task{
		{ID: 2, Name: "second", Status: models.StatusPending},
		{ID: 10, Name: "first", Description: "desc", Status: models.StatusCompleted},
	})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "desc")
	assert.Less(t, strings.Index(out, "second"), strings.Index(out, "first"))
}

func TestRenderTask(t *testing.T) {
	out := renderTask(models.Task{ID: 1, Name: "A", Status: models.StatusInProgress})

	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "STATUS")
}
