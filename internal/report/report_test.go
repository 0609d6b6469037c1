package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/litescript/ls-orbits/internal/epoch"
	"github.com/litescript/ls-orbits/internal/orbit"
)

func testElements(t *testing.T) orbit.Elements {
	t.Helper()
	el, err := orbit.ParseTLE(
		"1 25544U 98067A   24001.00000000  .00016717  00000-0  10270-3 0  9994",
		"2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.50103472202145",
	)
	if err != nil {
		t.Fatalf("ParseTLE: %v", err)
	}
	return el
}

func TestWriteEpochTable(t *testing.T) {
	e, _ := epoch.FromJD(2451545.0)

	var buf bytes.Buffer
	WriteEpochTable(&buf, e)
	out := buf.String()

	for _, want := range []string{
		"2000-01-01T12:00:00.000Z",
		"2451545.000000",
		"51544.500000",
		"946728000",
		"630763200",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("epoch table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteElements(t *testing.T) {
	var buf bytes.Buffer
	WriteElements(&buf, testElements(t))
	out := buf.String()

	for _, want := range []string{"Semi-major axis", "51.6416", "247.4627", "Perigee radius"} {
		if !strings.Contains(out, want) {
			t.Errorf("elements table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteStateVector(t *testing.T) {
	el := testElements(t)
	sv, err := el.StateVector()
	if err != nil {
		t.Fatalf("StateVector: %v", err)
	}

	var buf bytes.Buffer
	WriteStateVector(&buf, sv)
	out := buf.String()

	if !strings.Contains(out, "Position") || !strings.Contains(out, "Velocity") {
		t.Errorf("state vector output incomplete:\n%s", out)
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("state vector output contains NaN:\n%s", out)
	}
}

func TestSnapshotJSON(t *testing.T) {
	el := testElements(t)
	sv, err := el.StateVector()
	if err != nil {
		t.Fatalf("StateVector: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportSnapshot(el, &sv).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	if math.Abs(decoded.Epoch.JD-2460310.5) > 1e-6 {
		t.Errorf("epoch JD = %v, want 2460310.5", decoded.Epoch.JD)
	}
	if math.Abs(decoded.Elements.SemiMajorAxis-el.SemiMajorAxis) > 1e-9 {
		t.Errorf("semi-major axis = %v, want %v", decoded.Elements.SemiMajorAxis, el.SemiMajorAxis)
	}
	if decoded.State == nil {
		t.Fatal("state vector missing from snapshot")
	}
	if decoded.State.Position[0] != sv.Position.X {
		t.Errorf("position[0] = %v, want %v", decoded.State.Position[0], sv.Position.X)
	}
}

func TestSnapshotWithoutState(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportSnapshot(testElements(t), nil).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.Contains(buf.String(), "state_vector") {
		t.Errorf("snapshot without state should omit state_vector:\n%s", buf.String())
	}
}
