package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	datasetout "bikeshare/internal/modules/dataset/adapter/out"
	"bikeshare/internal/modules/dataset/domain"
	apperrors "bikeshare/internal/platform/errors"
)

func sourceRef(city domain.City, path string) domain.SourceRef {
	return domain.SourceRef{
		City:   city,
		Path:   path,
		Format: domain.SourceFormatCSV,
		Columns: domain.ColumnMap{
			StartTime:    "Start Time",
			EndTime:      "End Time",
			StartStation: "Start Station",
			EndStation:   "End Station",
			TripDuration: "Trip Duration",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
		TimestampLayouts: []string{"2006-01-02 15:04:05", "2006-01-02 15:04"},
	}
}

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416.5,May St & Taylor St,Wood St & Taylor St,Customer,,
`

func TestDecodeTripsReadsChicagoExtract(t *testing.T) {
	t.Parallel()
	dataset, err := datasetout.DecodeTrips(context.Background(), strings.NewReader(chicagoCSV), sourceRef(domain.CityChicago, "chicago.csv"))
	if err != nil {
		t.Fatalf("decode trips: %v", err)
	}
	if dataset.Len() != 3 {
		t.Fatalf("expected 3 trips, got %d", dataset.Len())
	}
	for _, c := range []domain.Capability{domain.CapabilityEndTime, domain.CapabilityGender, domain.CapabilityBirthYear} {
		if !dataset.Schema.Has(c) {
			t.Fatalf("expected capability %s", c)
		}
	}
	first := dataset.Records[0]
	if first.Index != 1423854 {
		t.Fatalf("expected index from unnamed column, got %d", first.Index)
	}
	if !first.StartTime.Equal(time.Date(2017, 6, 23, 15, 9, 32, 0, time.UTC)) {
		t.Fatalf("unexpected start time %s", first.StartTime)
	}
	if first.Duration != 321 || first.StartStation != "Wood St & Hubbard St" || first.UserType != "Subscriber" {
		t.Fatalf("unexpected first trip %+v", first)
	}
	if !first.HasBirthYear || first.BirthYear != 1992 {
		t.Fatalf("expected birth year 1992, got %+v", first)
	}
	if dataset.Records[1].HasBirthYear {
		t.Fatalf("empty birth year should be absent")
	}
	if dataset.Records[2].Gender != "" || dataset.Records[2].Duration != 416.5 {
		t.Fatalf("unexpected third trip %+v", dataset.Records[2])
	}
}

func TestDecodeTripsDetectsMissingOptionalColumns(t *testing.T) {
	t.Parallel()
	raw := "\ufeffStart Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber\n"
	dataset, err := datasetout.DecodeTrips(context.Background(), strings.NewReader(raw), sourceRef(domain.CityWashington, "washington.csv"))
	if err != nil {
		t.Fatalf("decode trips: %v", err)
	}
	if dataset.Schema.Has(domain.CapabilityGender) || dataset.Schema.Has(domain.CapabilityBirthYear) {
		t.Fatalf("washington extract has no gender or birth year: %v", dataset.Schema.CapabilityNames())
	}
	if !dataset.Schema.Has(domain.CapabilityEndTime) {
		t.Fatalf("expected end time capability")
	}
	if dataset.Records[0].Index != 0 {
		t.Fatalf("expected positional index without index column, got %d", dataset.Records[0].Index)
	}
}

func TestDecodeTripsRejectsMissingRequiredColumn(t *testing.T) {
	t.Parallel()
	raw := "Start Time,Trip Duration,Start Station,End Station\n2017-01-01 00:00:00,10,A,B\n"
	_, err := datasetout.DecodeTrips(context.Background(), strings.NewReader(raw), sourceRef(domain.CityChicago, "chicago.csv"))
	if !errors.Is(err, apperrors.ErrMalformedInput) {
		t.Fatalf("expected malformed input, got %v", err)
	}
	var malformed *domain.MalformedInputError
	if !errors.As(err, &malformed) || malformed.Column != "User Type" || malformed.Line != 1 {
		t.Fatalf("expected missing User Type on header line, got %v", err)
	}
}

func TestDecodeTripsRejectsBadValues(t *testing.T) {
	t.Parallel()
	header := "Start Time,Trip Duration,Start Station,End Station,User Type\n"
	cases := map[string]struct {
		row    string
		column string
	}{
		"timestamp": {row: "yesterday,10,A,B,Subscriber\n", column: "Start Time"},
		"duration":  {row: "2017-01-01 00:00:00,ten,A,B,Subscriber\n", column: "Trip Duration"},
	}
	for name, tc := range cases {
		raw := header + "2017-01-01 00:00:00,10,A,B,Subscriber\n" + tc.row
		_, err := datasetout.DecodeTrips(context.Background(), strings.NewReader(raw), sourceRef(domain.CityChicago, "chicago.csv"))
		var malformed *domain.MalformedInputError
		if !errors.As(err, &malformed) {
			t.Fatalf("%s: expected malformed input error, got %v", name, err)
		}
		if malformed.Column != tc.column || malformed.Line != 3 {
			t.Fatalf("%s: unexpected location %+v", name, malformed)
		}
	}
}

func TestDecodeTripsRejectsEmptyFile(t *testing.T) {
	t.Parallel()
	_, err := datasetout.DecodeTrips(context.Background(), strings.NewReader(""), sourceRef(domain.CityChicago, "chicago.csv"))
	if !errors.Is(err, apperrors.ErrMalformedInput) {
		t.Fatalf("expected malformed input, got %v", err)
	}
}

func TestDecodeTripsHonorsCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := datasetout.DecodeTrips(ctx, strings.NewReader(chicagoCSV), sourceRef(domain.CityChicago, "chicago.csv"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestCSVTripReaderReadsFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "chicago.csv")
	if err := os.WriteFile(path, []byte(chicagoCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	dataset, err := datasetout.NewCSVTripReader().ReadTrips(context.Background(), sourceRef(domain.CityChicago, path))
	if err != nil {
		t.Fatalf("read trips: %v", err)
	}
	if dataset.Source != path || dataset.City != domain.CityChicago || dataset.Len() != 3 {
		t.Fatalf("unexpected dataset %s %s %d", dataset.Source, dataset.City, dataset.Len())
	}
	if _, err := datasetout.NewCSVTripReader().ReadTrips(context.Background(), sourceRef(domain.CityChicago, path+".missing")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
