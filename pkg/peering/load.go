package peering

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"

	perrors "github.com/matzehuels/peermap/pkg/errors"
)

// requiredPaths lists the keys every peering result must carry.
var requiredPaths = []string{
	"resourceId",
	"accountId",
	"configuration.requesterVpcInfo.vpcId",
	"configuration.requesterVpcInfo.ownerId",
	"configuration.accepterVpcInfo.vpcId",
	"configuration.accepterVpcInfo.ownerId",
}

// Read decodes a peering export from r.
//
// Records are returned in export order. Read fails on the first result that
// lacks a required key; see the package documentation for the list.
// Read does not close r.
func Read(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "read peering export")
	}
	if !gjson.ValidBytes(data) {
		return nil, perrors.New(perrors.ErrCodeMalformedRecord, "peering export is not valid JSON")
	}

	results := gjson.GetBytes(data, "results")
	if !results.IsArray() {
		return nil, perrors.New(perrors.ErrCodeMalformedRecord, "peering export has no results array")
	}

	items := results.Array()
	records := make([]Record, 0, len(items))
	for i, item := range items {
		rec, err := decodeResult(item)
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeMalformedRecord, err, "result %d", i)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Load reads the peering export at path.
// A missing file yields an [perrors.ErrCodeFileNotFound] error; the export is
// the one input the report cannot do without.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "peering export %s", path)
		}
		return nil, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

func decodeResult(item gjson.Result) (Record, error) {
	// select-resource-config wraps each item in a JSON string.
	if item.Type == gjson.String {
		if !gjson.Valid(item.Str) {
			return Record{}, errors.New("embedded result is not valid JSON")
		}
		item = gjson.Parse(item.Str)
	}
	if !item.IsObject() {
		return Record{}, errors.New("result is not an object")
	}
	for _, path := range requiredPaths {
		if !item.Get(path).Exists() {
			return Record{}, &missingKeyError{path: path}
		}
	}

	var res result
	if err := json.Unmarshal([]byte(item.Raw), &res); err != nil {
		return Record{}, err
	}
	return res.record(), nil
}

type missingKeyError struct{ path string }

func (e *missingKeyError) Error() string { return "missing " + e.path }
