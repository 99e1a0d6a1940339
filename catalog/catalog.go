// Package catalog holds the read-only question corpus grouped by subject.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/utils"
)

//go:embed questions.yaml
var defaultQuestions []byte

type fileFormat struct {
	Subjects []struct {
		ID        string            `yaml:"id"`
		Questions []models.Question `yaml:"questions"`
	} `yaml:"subjects"`
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	order     []string
	questions map[string][]models.Question
	total     int
	intn      func(n int) int
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRand makes DrawRandom use r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(c *Catalog) {
		c.intn = r.IntN
	}
}

// Default loads the embedded catalog.
func Default(opts ...Option) (*Catalog, error) {
	return Load(bytes.NewReader(defaultQuestions), opts...)
}

// LoadFile loads a catalog from a YAML file on disk.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// Load parses a YAML catalog. Subjects keep their declaration order and the
// synthetic "all" subject is appended last.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	var raw fileFormat
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		questions: make(map[string][]models.Question, len(raw.Subjects)+1),
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}

	var all []models.Question
	for _, s := range raw.Subjects {
		id := strings.TrimSpace(s.ID)
		switch {
		case id == "":
			return nil, fmt.Errorf("catalog: subject without id")
		case id == models.AllSubjects:
			return nil, fmt.Errorf("catalog: subject id %q is reserved", models.AllSubjects)
		}
		if _, dup := c.questions[id]; dup {
			return nil, fmt.Errorf("catalog: duplicate subject %q", id)
		}

		qs := make([]models.Question, 0, len(s.Questions))
		for i, q := range s.Questions {
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				return nil, fmt.Errorf("catalog: %s question %d: correct index %d outside %d options",
					id, i+1, q.CorrectIndex, len(q.Options))
			}
			q.ID = i + 1
			qs = append(qs, q)
		}

		c.order = append(c.order, id)
		c.questions[id] = qs
		c.total += len(qs)
		all = append(all, qs...)
	}

	pooled := make([]models.Question, len(all))
	for i, q := range all {
		q.ID = i + 1
		pooled[i] = q
	}
	c.order = append(c.order, models.AllSubjects)
	c.questions[models.AllSubjects] = pooled

	utils.LogStartup("Question catalog loaded: %d subjects, %d questions", len(c.order)-1, c.total)
	return c, nil
}

// Subjects returns the subject identifiers, "all" included.
func (c *Catalog) Subjects() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// SubjectInfos returns each subject with its question count.
func (c *Catalog) SubjectInfos() []models.SubjectInfo {
	out := make([]models.SubjectInfo, 0, len(c.order))
	for _, s := range c.order {
		out = append(out, models.SubjectInfo{Subject: s, QuestionCount: len(c.questions[s])})
	}
	return out
}

// Has reports whether subject exists in the catalog.
func (c *Catalog) Has(subject string) bool {
	_, ok := c.questions[subject]
	return ok
}

// QuestionsIn returns a copy of the questions of subject.
func (c *Catalog) QuestionsIn(subject string) ([]models.Question, error) {
	qs, ok := c.questions[subject]
	if !ok {
		return nil, fmt.Errorf("subject %q: %w", subject, models.ErrNotFound)
	}
	out := make([]models.Question, len(qs))
	for i, q := range qs {
		out[i] = cloneQuestion(q)
	}
	return out, nil
}

// DrawRandom picks one question of subject uniformly at random.
func (c *Catalog) DrawRandom(subject string) (models.Question, error) {
	qs, ok := c.questions[subject]
	if !ok {
		return models.Question{}, fmt.Errorf("subject %q: %w", subject, models.ErrNotFound)
	}
	if len(qs) == 0 {
		return models.Question{}, fmt.Errorf("subject %q: %w", subject, models.ErrEmpty)
	}
	return cloneQuestion(qs[c.intn(len(qs))]), nil
}

// TotalQuestions counts every distinct question once; the "all" view is not added again.
func (c *Catalog) TotalQuestions() int {
	return c.total
}

func cloneQuestion(q models.Question) models.Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}
