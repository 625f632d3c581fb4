package llcases

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	records []CaseRecord
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() ([]CaseRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]CaseRecord{}, m.records...), nil
}

func (m *memStore) Save(records []CaseRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.records = append([]CaseRecord{}, records...)
	return nil
}

func sampleRecords() []CaseRecord {
	return []CaseRecord{
		{
			ID:          "OLL 27",
			Solution:    "R U R' U R U2 R'",
			TopPattern:  "01011110",
			RingPattern: "001100000100",
			Extra:       map[string]json.RawMessage{"name": json.RawMessage(`"Sune"`)},
		},
		{
			ID:          "OLL 45",
			Solution:    "F R U R' U' F'",
			TopPattern:  "11111111",
			RingPattern: "000000000000",
		},
	}
}

func TestRepairCases(t *testing.T) {
	records := sampleRecords()
	before := sampleRecords()

	report, err := RepairCases(records)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Changed)

	assert.Equal(t, before[0], records[0])

	assert.Equal(t, before[1].ID, records[1].ID)
	assert.Equal(t, before[1].Solution, records[1].Solution)
	assert.Equal(t, "00111001", records[1].TopPattern)
	assert.Equal(t, "010000101010", records[1].RingPattern)

	require.Len(t, report.Changes, 1)
	assert.Equal(t, Change{
		Index: 1,
		ID:    "OLL 45",
		Old:   Fingerprint{Top: "11111111", Ring: "000000000000"},
		New:   Fingerprint{Top: "00111001", Ring: "010000101010"},
	}, report.Changes[0])

	again, err := RepairCases(records)
	require.NoError(t, err)
	assert.Zero(t, again.Changed)
}

func TestRepairCasesAllOrNothing(t *testing.T) {
	records := sampleRecords()
	records[0].TopPattern = "00000000"
	records[1].Solution = "F R U R' U' F' Q"

	_, err := RepairCases(records)
	var notationErr *InvalidNotationError
	require.ErrorAs(t, err, &notationErr)
	assert.Equal(t, "Q", notationErr.Token)
	assert.Equal(t, "00000000", records[0].TopPattern)

	records = sampleRecords()
	records[0].TopPattern = "00000000"
	records[1].RingPattern = ""
	_, err = RepairCases(records)
	var missingErr *MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "00000000", records[0].TopPattern)
}

func TestRepairStore(t *testing.T) {
	store := &memStore{records: sampleRecords()}
	report, err := RepairStore(store, RepairOptions{CheckLayers: true})
	require.NoError(t, err)
	assert.True(t, report.Saved)
	assert.Equal(t, 1, report.Changed)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, "00111001", store.records[1].TopPattern)
	assert.Equal(t, sampleRecords()[0], store.records[0])
}

func TestRepairStoreDryRun(t *testing.T) {
	store := &memStore{records: sampleRecords()}
	report, err := RepairStore(store, RepairOptions{DryRun: true})
	require.NoError(t, err)
	assert.False(t, report.Saved)
	assert.Equal(t, 1, report.Changed)
	assert.Zero(t, store.saves)
	assert.Equal(t, "11111111", store.records[1].TopPattern)
}

func TestRepairStoreFailures(t *testing.T) {
	loadErr := NewStorageError("read", "cases.json", errors.New("disk on fire"))
	store := &memStore{loadErr: loadErr}
	_, err := RepairStore(store, RepairOptions{})
	assert.ErrorIs(t, err, loadErr)
	assert.Zero(t, store.saves)

	records := sampleRecords()
	records[0].Solution = ""
	store = &memStore{records: records}
	_, err = RepairStore(store, RepairOptions{})
	var missingErr *MissingFieldError
	assert.ErrorAs(t, err, &missingErr)
	assert.Zero(t, store.saves)

	saveErr := NewStorageError("write", "cases.json", errors.New("read-only"))
	store = &memStore{records: sampleRecords(), saveErr: saveErr}
	report, err := RepairStore(store, RepairOptions{})
	assert.ErrorIs(t, err, saveErr)
	assert.Nil(t, report)
}

func TestRepairFileStore(t *testing.T) {
	store := &FileStore{Path: writeCaseFile(t, sampleCaseFile)}
	report, err := RepairStore(store, RepairOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Changed)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Fingerprint{Top: "00111001", Ring: "010000101010"}, records[1].Fingerprint())
	assert.JSONEq(t, `"Sune"`, string(records[0].Extra["name"]))
}
