package llcases

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

// DefaultIndent is the indentation used when writing a
// case file.
const DefaultIndent = "  "

// A CaseRecord is one named last-layer case together
// with the algorithm that solves it.
//
// Fields which this package does not use are kept in
// Extra so that rewriting a case file does not lose them.
type CaseRecord struct {
	ID          string `json:"id" validate:"required"`
	Solution    string `json:"solution" validate:"required"`
	TopPattern  string `json:"topPattern" validate:"required"`
	RingPattern string `json:"ringPattern" validate:"required"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Fingerprint returns the stored fingerprint.
func (c *CaseRecord) Fingerprint() Fingerprint {
	return Fingerprint{Top: c.TopPattern, Ring: c.RingPattern}
}

// SetFingerprint overwrites the stored fingerprint.
func (c *CaseRecord) SetFingerprint(f Fingerprint) {
	c.TopPattern = f.Top
	c.RingPattern = f.Ring
}

func (c *CaseRecord) stringFields() []struct {
	key string
	ptr *string
} {
	return []struct {
		key string
		ptr *string
	}{
		{"id", &c.ID},
		{"solution", &c.Solution},
		{"topPattern", &c.TopPattern},
		{"ringPattern", &c.RingPattern},
	}
}

// MarshalJSON encodes the record as a JSON object with
// sorted keys, including every Extra field.
func (c CaseRecord) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(c.Extra)+4)
	for k, v := range c.Extra {
		fields[k] = v
	}
	for _, f := range c.stringFields() {
		data, err := json.Marshal(*f.ptr)
		if err != nil {
			return nil, err
		}
		fields[f.key] = data
	}
	return json.Marshal(fields)
}

// UnmarshalJSON decodes a record, keeping unknown fields.
func (c *CaseRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*c = CaseRecord{}
	for _, f := range c.stringFields() {
		raw, ok := fields[f.key]
		if !ok {
			continue
		}
		delete(fields, f.key)
		if err := json.Unmarshal(raw, f.ptr); err != nil {
			return fmt.Errorf("field %s: %w", f.key, err)
		}
	}
	if len(fields) > 0 {
		c.Extra = fields
	}
	return nil
}

// recordValidate checks the required fields of records.
// It reports fields by their JSON names.
var recordValidate *validator.Validate

func init() {
	recordValidate = validator.New()
	recordValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateRecords makes sure that every record has an
// id, a solution, and both stored patterns.
func ValidateRecords(records []CaseRecord) error {
	for i := range records {
		err := recordValidate.Struct(&records[i])
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return NewMissingFieldError(i, records[i].ID, fieldErrs[0].Field())
		}
		return err
	}
	return nil
}

// A Store holds a collection of case records, which is
// always read and written as a whole.
type Store interface {
	Load() ([]CaseRecord, error)
	Save(records []CaseRecord) error
}

// FileStore is a Store backed by a JSON array on disk.
type FileStore struct {
	Path string

	// Indent is used for each nesting level when saving.
	// If empty, DefaultIndent is used.
	Indent string
}

// Load reads every record from the file.
func (f *FileStore) Load() ([]CaseRecord, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, NewStorageError("read", f.Path, err)
	}
	var records []CaseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, NewStorageError("decode", f.Path, err)
	}
	return records, nil
}

// Save replaces the file with the given records.
//
// The data is written to a temporary file which is then
// renamed over the original, so readers never observe a
// partially written collection.
func (f *FileStore) Save(records []CaseRecord) error {
	indent := f.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	if records == nil {
		records = []CaseRecord{}
	}
	data, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return NewStorageError("encode", f.Path, err)
	}
	data = append(data, '\n')

	mode := os.FileMode(0644)
	if info, err := os.Stat(f.Path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), filepath.Base(f.Path)+".tmp*")
	if err != nil {
		return NewStorageError("create temporary file for", f.Path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return NewStorageError("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return NewStorageError("close", tmpName, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return NewStorageError("chmod", tmpName, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		return NewStorageError("replace", f.Path, err)
	}
	return nil
}
