package model

import (
	stdjson "encoding/json"
	"reflect"
	"testing"

	"github.com/francoispqt/gojay"
	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/aotjson"
)

var jsoniterStd = jsoniter.ConfigCompatibleWithStandardLibrary

func TestCrossLibraryDecode(t *testing.T) {
	decoders := []struct {
		name      string
		unmarshal func(data []byte, v interface{}) error
	}{
		{name: "encoding/json", unmarshal: stdjson.Unmarshal},
		{name: "jsoniter", unmarshal: jsoniterStd.Unmarshal},
		{name: "goccy", unmarshal: gojson.Unmarshal},
	}
	for _, fixture := range fixtures() {
		data := marshal(t, fixture)
		for _, decoder := range decoders {
			t.Run(reflect.TypeOf(fixture).Elem().Name()+"/"+decoder.name, func(t *testing.T) {
				actual := reflect.New(reflect.TypeOf(fixture).Elem()).Interface()
				require.NoError(t, decoder.unmarshal(data, actual))
				assert.Equal(t, fixture, actual)
			})
		}
	}
}

func TestCrossLibraryEncode(t *testing.T) {
	encoders := []struct {
		name    string
		marshal func(v interface{}) ([]byte, error)
	}{
		{name: "jsoniter", marshal: jsoniterStd.Marshal},
		{name: "goccy", marshal: gojson.Marshal},
	}
	for _, fixture := range fixtures() {
		for _, encoder := range encoders {
			t.Run(reflect.TypeOf(fixture).Elem().Name()+"/"+encoder.name, func(t *testing.T) {
				data, err := encoder.marshal(fixture)
				require.NoError(t, err)
				assert.Equal(t, fixture, unmarshal(t, data, fixture))
			})
		}
	}
}

func BenchmarkMarshal_Location(b *testing.B) {
	loc := &Location{Lat: 47.6, Lon: -122.3}
	b.Run("aotjson", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := aotjson.Marshal(loc); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("aotjson/codec", func(b *testing.B) {
		codec := aotjson.MustCodec[Location]()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := codec.Marshal(loc); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("encoding/json", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := stdjson.Marshal(loc); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("jsoniter", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := jsoniterStd.Marshal(loc); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("goccy", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := gojson.Marshal(loc); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("gojay", func(b *testing.B) {
		mirror := gojayLocation(*loc)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := gojay.MarshalJSONObject(&mirror); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkUnmarshal_Location(b *testing.B) {
	data := []byte(`{"lat":47.6,"lon":-122.3}`)
	b.Run("aotjson", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := aotjson.Unmarshal[Location](data); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("aotjson/codec", func(b *testing.B) {
		codec := aotjson.MustCodec[Location]()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := codec.Unmarshal(data); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("encoding/json", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var loc Location
			if err := stdjson.Unmarshal(data, &loc); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("jsoniter", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var loc Location
			if err := jsoniterStd.Unmarshal(data, &loc); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("goccy", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var loc Location
			if err := gojson.Unmarshal(data, &loc); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("gojay", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var loc gojayLocation
			if err := gojay.UnmarshalJSONObject(data, &loc); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func benchmarkModel[T any](b *testing.B, v *T) {
	data, err := aotjson.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("marshal/aotjson", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := aotjson.Marshal(v); err != nil {
				b.Fatal(err)
			}
		}
	})
	codec := aotjson.MustCodec[T]()
	b.Run("marshal/aotjson/codec", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := codec.Marshal(v); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("marshal/encoding/json", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := stdjson.Marshal(v); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("marshal/goccy", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := gojson.Marshal(v); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("unmarshal/aotjson", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := aotjson.Unmarshal[T](data); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("unmarshal/aotjson/codec", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := codec.Unmarshal(data); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("unmarshal/encoding/json", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var out T
			if err := stdjson.Unmarshal(data, &out); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("unmarshal/jsoniter", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var out T
			if err := jsoniterStd.Unmarshal(data, &out); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkIndexViewModel(b *testing.B) {
	benchmarkModel(b, newIndex())
}

func BenchmarkMyEventsListerViewModel(b *testing.B) {
	benchmarkModel(b, newLister())
}

func BenchmarkCollectionsOfPrimitives(b *testing.B) {
	benchmarkModel(b, newCollections())
}
