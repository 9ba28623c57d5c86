package assessment

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"mindpulse/internal/model"
)

// BaseFlowLength is the fixed number of questions in the base flow
const BaseFlowLength = 5

//go:embed bank.yaml
var bundledBank []byte

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Bank is a validated, read-only question bank with its flow table.
// It is safe to share one Bank between any number of sessions.
type Bank struct {
	doc       model.QuestionBank
	questions map[string]*model.Question
}

// DefaultBank returns the bank bundled with the binary.
// It panics if the bundled data is invalid.
func DefaultBank() *Bank {
	defaultOnce.Do(func() {
		b, err := ParseBank(bundledBank)
		if err != nil {
			panic(fmt.Sprintf("bundled question bank: %v", err))
		}
		defaultBank = b
	})
	return defaultBank
}

// BundledBankYAML returns a copy of the raw bundled bank
func BundledBankYAML() []byte {
	out := make([]byte, len(bundledBank))
	copy(out, bundledBank)
	return out
}

// ParseBank decodes a YAML question bank and validates it
func ParseBank(data []byte) (*Bank, error) {
	var doc model.QuestionBank
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse: %w", ErrInvalidBank, err)
	}
	return NewBank(doc)
}

// NewBank validates doc and indexes its questions
func NewBank(doc model.QuestionBank) (*Bank, error) {
	doc.Questions = append([]model.Question(nil), doc.Questions...)
	b := &Bank{
		doc:       doc,
		questions: make(map[string]*model.Question, len(doc.Questions)),
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bank) validate() error {
	var errs []error

	for i := range b.doc.Questions {
		q := &b.doc.Questions[i]
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("question #%d has no id", i))
			continue
		}
		if _, dup := b.questions[q.ID]; dup {
			errs = append(errs, fmt.Errorf("question %s is defined twice", q.ID))
			continue
		}
		b.questions[q.ID] = q

		if !q.Type.Valid() {
			errs = append(errs, fmt.Errorf("question %s has unknown type %q", q.ID, q.Type))
		}
		if q.Branch != "" && !q.Branch.Valid() {
			errs = append(errs, fmt.Errorf("question %s has unknown branch %q", q.ID, q.Branch))
		}
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Errorf("question %s has no options", q.ID))
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.ID == "" {
				errs = append(errs, fmt.Errorf("question %s has an option without id", q.ID))
				continue
			}
			if seen[o.ID] {
				errs = append(errs, fmt.Errorf("question %s has duplicate option %s", q.ID, o.ID))
			}
			seen[o.ID] = true
			for name := range o.Weight {
				if !name.Valid() {
					errs = append(errs, fmt.Errorf("question %s option %s weights unknown index %q", q.ID, o.ID, name))
				}
			}
		}
	}

	if n := len(b.doc.Flows.Base); n != BaseFlowLength {
		errs = append(errs, fmt.Errorf("base flow has %d questions, want %d", n, BaseFlowLength))
	}
	for _, br := range append([]model.Branch{model.BranchBase}, model.DeepDiveBranches...) {
		for _, id := range b.doc.Flows.Flow(br) {
			if _, ok := b.questions[id]; !ok {
				errs = append(errs, fmt.Errorf("flow %s references unknown question %s", br, id))
			}
		}
	}

	for _, rule := range crisisRules {
		q, ok := b.questions[rule.questionID]
		if !ok {
			errs = append(errs, fmt.Errorf("crisis question %s is missing", rule.questionID))
			continue
		}
		if _, ok := q.Option(rule.optionID); !ok {
			errs = append(errs, fmt.Errorf("crisis question %s has no option %s", rule.questionID, rule.optionID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBank, errors.Join(errs...))
	}
	return nil
}

// Question looks up a question by ID
func (b *Bank) Question(id string) (*model.Question, bool) {
	q, ok := b.questions[id]
	return q, ok
}

// Flow returns the ordered question IDs of branch br
func (b *Bank) Flow(br model.Branch) []string {
	return b.doc.Flows.Flow(br)
}

// Version returns the bank's data version
func (b *Bank) Version() int {
	return b.doc.Version
}

// Document returns a copy of the underlying bank document, e.g. for seeding storage
func (b *Bank) Document() model.QuestionBank {
	doc := b.doc
	doc.Questions = append([]model.Question(nil), b.doc.Questions...)
	return doc
}
