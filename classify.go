package csv2docx

import "strings"

// CV section names, matched against the lowercased section field.
const (
	SectionPersonal   = "personal"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionObjectives = "objectives"
	SectionTitle      = "title"
)

// CVSections holds CV rows grouped by section, each bucket in source order.
type CVSections struct {
	Personal   []Row
	Experience []Row
	Education  []Row
	Skills     []Row
	Objectives []Row
	Title      string // description of the last title row
}

// LetterLabel is a cover letter field, matched exactly against the title field.
type LetterLabel string

// Cover letter labels.
const (
	LabelSender     LetterLabel = "Expéditeur"
	LabelRecipient  LetterLabel = "Destinataire"
	LabelDate       LetterLabel = "Date"
	LabelSubject    LetterLabel = "Objet"
	LabelSalutation LetterLabel = "Salutation"
	LabelBody       LetterLabel = "Corps"
	LabelClosing    LetterLabel = "Formule de politesse"
	LabelSignature  LetterLabel = "Signature"
)

// LetterLabels lists the recognized labels in layout order.
var LetterLabels = []LetterLabel{
	LabelSender, LabelRecipient, LabelDate, LabelSubject,
	LabelSalutation, LabelBody, LabelClosing, LabelSignature,
}

// LetterFields maps each label present in the source to its content.
type LetterFields map[LetterLabel]string

// Get returns the content of label and whether the source had it.
func (f LetterFields) Get(label LetterLabel) (string, bool) {
	v, ok := f[label]
	return v, ok
}

// RepeatPolicy decides what a repeated letter label does.
type RepeatPolicy int

const (
	// LastWriteWins keeps the content of the last row with the label.
	LastWriteWins RepeatPolicy = iota
	// FirstWriteWins keeps the content of the first row with the label.
	FirstWriteWins
)

// handler files one row into a classification target.
type handler[T any] func(target T, row Row)

// dispatch routes every row to the handler registered for its key.
// Rows whose key has no handler are dropped.
func dispatch[T any](rows []Row, target T, key func(Row) string, handlers map[string]handler[T]) {
	for _, row := range rows {
		if h, ok := handlers[key(row)]; ok {
			h(target, row)
		}
	}
}

var cvHandlers = map[string]handler[*CVSections]{
	SectionPersonal:   func(s *CVSections, r Row) { s.Personal = append(s.Personal, r) },
	SectionExperience: func(s *CVSections, r Row) { s.Experience = append(s.Experience, r) },
	SectionEducation:  func(s *CVSections, r Row) { s.Education = append(s.Education, r) },
	SectionSkills:     func(s *CVSections, r Row) { s.Skills = append(s.Skills, r) },
	SectionObjectives: func(s *CVSections, r Row) { s.Objectives = append(s.Objectives, r) },
	SectionTitle:      func(s *CVSections, r Row) { s.Title = strings.TrimSpace(r.Get(FieldDescription)) },
}

// ClassifyCV groups rows by their lowercased section field.
func ClassifyCV(rows []Row) CVSections {
	var s CVSections
	dispatch(rows, &s, func(r Row) string {
		return strings.ToLower(strings.TrimSpace(r.Get(FieldSection)))
	}, cvHandlers)
	return s
}

// ClassifyLetter maps rows to letter labels by their title field.
// A repeated label keeps the last row's content.
func ClassifyLetter(rows []Row) LetterFields {
	return ClassifyLetterWith(rows, LastWriteWins)
}

// ClassifyLetterWith is ClassifyLetter with an explicit repeat policy.
func ClassifyLetterWith(rows []Row, policy RepeatPolicy) LetterFields {
	handlers := make(map[string]handler[LetterFields], len(LetterLabels))
	for _, label := range LetterLabels {
		handlers[string(label)] = func(f LetterFields, r Row) {
			if _, seen := f[label]; seen && policy == FirstWriteWins {
				return
			}
			f[label] = r.Get(FieldContent)
		}
	}

	fields := make(LetterFields)
	dispatch(rows, fields, func(r Row) string {
		return r.Get(FieldTitle)
	}, handlers)
	return fields
}
