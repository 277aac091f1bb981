// Package classifier provides the shipped packaging classifier: a
// deterministic lookup against the warehouse packing material catalog.
// The catalog mirrors the physical stock list; codes are assigned by the
// warehouse and never reused.
package classifier

import (
	"strings"
)

// ContainerType groups catalog entries by packing material.
type ContainerType string

const (
	TypeBox      ContainerType = "BOX"
	TypeEnvelope ContainerType = "ENVELOPE"
	TypePlastic  ContainerType = "PLASTIC"
)

// ContainerSpec describes one packing material from the catalog.
type ContainerSpec struct {
	Code      string
	LengthCm  float64
	WidthCm   float64
	HeightCm  float64
	WeightG   float64
	VolumeCm3 float64
	Type      ContainerType
}

// containerSpecs is the physical packing material stock. Volumes are the
// usable capacity as measured by the warehouse, not length*width*height;
// flexible materials hold more than their folded dimensions suggest.
var containerSpecs = []ContainerSpec{
	{Code: "001", LengthCm: 32.0, WidthCm: 18.0, HeightCm: 25.0, WeightG: 300, VolumeCm3: 14400.0, Type: TypeBox},
	{Code: "002", LengthCm: 21.0, WidthCm: 18.0, HeightCm: 21.0, WeightG: 220, VolumeCm3: 7938.0, Type: TypeBox},
	{Code: "003", LengthCm: 28.0, WidthCm: 21.0, HeightCm: 9.0, WeightG: 220, VolumeCm3: 5292.0, Type: TypeBox},
	{Code: "005", LengthCm: 35.0, WidthCm: 75.0, HeightCm: 0.1, WeightG: 100, VolumeCm3: 262.5, Type: TypeBox},
	{Code: "007", LengthCm: 41.0, WidthCm: 36.0, HeightCm: 38.0, WeightG: 490, VolumeCm3: 56088.0, Type: TypeBox},
	{Code: "008", LengthCm: 33.0, WidthCm: 29.0, HeightCm: 33.0, WeightG: 660, VolumeCm3: 31581.0, Type: TypeBox},
	{Code: "009", LengthCm: 16.5, WidthCm: 9.0, HeightCm: 8.0, WeightG: 60, VolumeCm3: 1188.0, Type: TypeBox},
	{Code: "010", LengthCm: 16.0, WidthCm: 17.5, HeightCm: 6.5, WeightG: 120, VolumeCm3: 1820.0, Type: TypeBox},
	{Code: "012", LengthCm: 28.5, WidthCm: 19.5, HeightCm: 5.5, WeightG: 180, VolumeCm3: 3056.62, Type: TypeBox},
	{Code: "015", LengthCm: 16.0, WidthCm: 8.0, HeightCm: 4.0, WeightG: 40, VolumeCm3: 512.0, Type: TypeBox},
	{Code: "025", LengthCm: 8.0, WidthCm: 8.0, HeightCm: 23.0, WeightG: 40, VolumeCm3: 1472.0, Type: TypeBox},
	{Code: "026", LengthCm: 12.0, WidthCm: 12.0, HeightCm: 36.0, WeightG: 190, VolumeCm3: 5184.0, Type: TypeBox},
	{Code: "027", LengthCm: 21.0, WidthCm: 27.0, HeightCm: 8.0, WeightG: 140, VolumeCm3: 4536.0, Type: TypeBox},
	{Code: "042", LengthCm: 32.0, WidthCm: 18.0, HeightCm: 21.0, WeightG: 130, VolumeCm3: 12096.0, Type: TypeBox},
	{Code: "043", LengthCm: 21.0, WidthCm: 18.0, HeightCm: 21.0, WeightG: 100, VolumeCm3: 7938.0, Type: TypeBox},
	{Code: "044", LengthCm: 42.0, WidthCm: 32.0, HeightCm: 18.0, WeightG: 670, VolumeCm3: 24192.0, Type: TypeBox},
	{Code: "045", LengthCm: 13.0, WidthCm: 13.0, HeightCm: 39.0, WeightG: 100, VolumeCm3: 6591.0, Type: TypeBox},
	{Code: "046", LengthCm: 49.0, WidthCm: 14.0, HeightCm: 26.0, WeightG: 220, VolumeCm3: 17836.0, Type: TypeBox},
	{Code: "050", LengthCm: 33.0, WidthCm: 29.0, HeightCm: 28.0, WeightG: 320, VolumeCm3: 26796.0, Type: TypeBox},
	{Code: "037", LengthCm: 23.0, WidthCm: 12.5, HeightCm: 0.1, WeightG: 10, VolumeCm3: 28.75, Type: TypeEnvelope},
	{Code: "101", LengthCm: 33.0, WidthCm: 49.0, HeightCm: 0.1, WeightG: 20, VolumeCm3: 12049.4, Type: TypePlastic},
	{Code: "102", LengthCm: 31.0, WidthCm: 17.0, HeightCm: 0.1, WeightG: 10, VolumeCm3: 13175.0, Type: TypePlastic},
	{Code: "103", LengthCm: 60.0, WidthCm: 80.0, HeightCm: 0.1, WeightG: 40, VolumeCm3: 24000.0, Type: TypePlastic},
	{Code: "104", LengthCm: 50.0, WidthCm: 40.0, HeightCm: 0.1, WeightG: 30, VolumeCm3: 20000.0, Type: TypePlastic},
}

var catalogByCode = func() map[string]ContainerSpec {
	byCode := make(map[string]ContainerSpec, len(containerSpecs))
	for _, spec := range containerSpecs {
		byCode[spec.Code] = spec
	}
	return byCode
}()

// NormalizeCode left-pads short numeric codes to the catalog's three digit
// form, so a scanned "7" resolves to "007".
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	for len(code) > 0 && len(code) < 3 {
		code = "0" + code
	}
	return code
}

// Spec looks a packing material up by code.
func Spec(code string) (ContainerSpec, bool) {
	spec, ok := catalogByCode[NormalizeCode(code)]
	return spec, ok
}

// Specs returns the catalog in stock-list order.
func Specs() []ContainerSpec {
	out := make([]ContainerSpec, len(containerSpecs))
	copy(out, containerSpecs)
	return out
}
