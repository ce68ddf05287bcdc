// Package workload reads process lists from files and generates random ones.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"os-scheduler/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// File mirrors a YAML or JSON workload document.
type File struct {
	Processes []Entry `yaml:"processes" json:"processes"`
}

type Entry struct {
	ID       string `yaml:"id" json:"id"`
	Arrival  int    `yaml:"arrival" json:"arrival"`
	Burst    int    `yaml:"burst" json:"burst"`
	Priority int    `yaml:"priority,omitempty" json:"priority,omitempty"`
	Deadline int    `yaml:"deadline,omitempty" json:"deadline,omitempty"`
	Queue    int    `yaml:"queue,omitempty" json:"queue,omitempty"`
}

// Load picks a reader by file extension: .csv, .yaml, .yml or .json.
func Load(path string) (requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".yaml", ".yml", ".json":
		return ReadYAML(f)
	default:
		return requests.ScheduleRequests{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadYAML decodes a workload document. JSON parses too, being valid YAML.
func ReadYAML(r io.Reader) (requests.ScheduleRequests, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return requests.ScheduleRequests{}, err
	}
	var doc File
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("decode workload: %w", err)
	}
	return doc.Request(), nil
}

// ReadCSV reads rows of id,arrival,burst[,priority[,deadline[,queue]]]. A first row
// whose arrival column is not a number is taken as a header.
func ReadCSV(r io.Reader) (requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 1 {
		if _, err := strconv.Atoi(rows[0][1]); err != nil {
			rows = rows[1:]
		}
	}

	var request requests.ScheduleRequests
	for i, row := range rows {
		if len(row) < 3 || len(row) > 6 {
			return requests.ScheduleRequests{}, fmt.Errorf("csv row %d: want 3 to 6 columns, got %d", i+1, len(row))
		}
		values := make([]int, 5)
		for col := 1; col < len(row); col++ {
			v, err := strconv.Atoi(strings.TrimSpace(row[col]))
			if err != nil {
				return requests.ScheduleRequests{}, fmt.Errorf("csv row %d column %d: %w", i+1, col+1, err)
			}
			values[col-1] = v
		}
		request.Jobs = append(request.Jobs, requests.Job{
			ProcessId:   strings.TrimSpace(row[0]),
			ArrivalTime: values[0],
			BurstTime:   values[1],
			Priority:    values[2],
			Deadline:    values[3],
			Queue:       values[4],
		})
	}
	return request, nil
}

// Request converts the document into an API request.
func (f File) Request() requests.ScheduleRequests {
	var request requests.ScheduleRequests
	for _, e := range f.Processes {
		request.Jobs = append(request.Jobs, requests.Job{
			ProcessId:   e.ID,
			ArrivalTime: e.Arrival,
			BurstTime:   e.Burst,
			Priority:    e.Priority,
			Deadline:    e.Deadline,
			Queue:       e.Queue,
		})
	}
	return request
}

// Random fills n processes the way the input form's random button does:
// arrival 0..10, burst 1..10, priority 1..5, deadline 5..20.
func Random(n int, rng *rand.Rand) File {
	var f File
	for i := 0; i < n; i++ {
		f.Processes = append(f.Processes, Entry{
			ID:       fmt.Sprintf("P%d", i+1),
			Arrival:  rng.Intn(11),
			Burst:    rng.Intn(10) + 1,
			Priority: rng.Intn(5) + 1,
			Deadline: rng.Intn(16) + 5,
		})
	}
	return f
}

// Marshal encodes a workload document as YAML.
func Marshal(f File) ([]byte, error) {
	return yaml.Marshal(f)
}
