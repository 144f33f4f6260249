package client

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
	borderStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pendingStyle    = cellStyle.Foreground(lipgloss.Color("214"))
	inProgressStyle = cellStyle.Foreground(lipgloss.Color("39"))
	completedStyle  = cellStyle.Foreground(lipgloss.Color("42"))
)

const statusColumn = 3

// renderTasks renders tasks as a bordered table, one row per task in list
// order.
func renderTasks(tasks []models.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, []string{
			strconv.FormatInt(task.ID, 10),
			task.Name,
			task.Description,
			string(task.Status),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "NAME", "DESCRIPTION", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusColumn && row >= 0 && row < len(tasks) {
				return statusStyle(tasks[row].Status)
			}
			return cellStyle
		})

	return t.String()
}

// renderTask renders a single task in the same table layout.
func renderTask(task models.Task) string {
	return renderTasks([]models.Task{task})
}

func statusStyle(status models.TaskStatus) lipgloss.Style {
	switch status {
	case models.StatusPending:
		return pendingStyle
	case models.StatusInProgress:
		return inProgressStyle
	case models.StatusCompleted:
		return completedStyle
	}
	return cellStyle
}
