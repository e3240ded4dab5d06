// Package names resolves VPC and account identifiers to human-readable names.
//
// Two optional inputs feed the resolver:
//
//   - a VPC inventory export (AWS::EC2::VPC results) whose Name tags become
//     VPC names
//   - an account list, a JSON (or YAML) array of {account_id, account_name}
//
// Either file may be absent. [Resolve] treats a missing file as a normal,
// reported condition: it logs an informational message, marks the source as
// unavailable and the renderer falls back to raw identifiers. Files that exist
// but cannot be parsed are real errors.
package names

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	perrors "github.com/matzehuels/peermap/pkg/errors"
	"github.com/matzehuels/peermap/pkg/graph"
)

// UnknownAccount is the account name shown when no mapping exists.
const UnknownAccount = "Unknown"

// nameTag is the VPC tag key holding the display name.
const nameTag = "Name"

// Maps holds the resolved names. The zero value is usable and resolves
// nothing.
type Maps struct {
	VPCs     map[string]string // vpc id -> Name tag
	Accounts map[string]string // account id -> account name

	// HaveVPCs and HaveAccounts report whether the source file was found.
	HaveVPCs     bool
	HaveAccounts bool
}

// VPCName returns the Name tag for id and whether one is known.
// An empty tag value counts as unknown.
func (m Maps) VPCName(id string) (string, bool) {
	name, ok := m.VPCs[id]
	return name, ok && name != ""
}

// AccountName returns the account name for id, or [UnknownAccount].
func (m Maps) AccountName(id string) string {
	if name, ok := m.Accounts[id]; ok && name != "" {
		return name
	}
	return UnknownAccount
}

// vpcExport mirrors an AWS::EC2::VPC inventory export.
type vpcExport struct {
	Results []struct {
		ResourceID    string `json:"resourceId"`
		Configuration struct {
			Tags []struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			} `json:"tags"`
		} `json:"configuration"`
	} `json:"results"`
}

type account struct {
	ID   string `json:"account_id" yaml:"account_id"`
	Name string `json:"account_name" yaml:"account_name"`
}

// ReadVPCNames decodes a VPC inventory export. VPCs without a Name tag are
// omitted from the result.
func ReadVPCNames(r io.Reader) (map[string]string, error) {
	var data vpcExport
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeMalformedRecord, err, "decode VPC inventory")
	}

	out := make(map[string]string, len(data.Results))
	for _, res := range data.Results {
		if res.ResourceID == "" {
			continue
		}
		for _, tag := range res.Configuration.Tags {
			if tag.Key == nameTag {
				out[res.ResourceID] = tag.Value
				break
			}
		}
	}
	return out, nil
}

// LoadVPCNames reads the VPC inventory export at path.
func LoadVPCNames(path string) (map[string]string, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadVPCNames(f)
}

// ReadAccountNames decodes a JSON array of {account_id, account_name}.
func ReadAccountNames(r io.Reader) (map[string]string, error) {
	var accounts []account
	if err := json.NewDecoder(r).Decode(&accounts); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeMalformedRecord, err, "decode account list")
	}
	return accountMap(accounts), nil
}

// ReadAccountNamesYAML decodes the YAML form of the account list.
func ReadAccountNamesYAML(r io.Reader) (map[string]string, error) {
	var accounts []account
	if err := yaml.NewDecoder(r).Decode(&accounts); err != nil && !errors.Is(err, io.EOF) {
		return nil, perrors.Wrap(perrors.ErrCodeMalformedRecord, err, "decode account list")
	}
	return accountMap(accounts), nil
}

// LoadAccountNames reads the account list at path. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON.
func LoadAccountNames(path string) (map[string]string, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadAccountNamesYAML(f)
	default:
		return ReadAccountNames(f)
	}
}

func accountMap(accounts []account) map[string]string {
	out := make(map[string]string, len(accounts))
	for _, a := range accounts {
		if a.ID != "" {
			out[a.ID] = a.Name
		}
	}
	return out
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return f, nil
}

// Resolve loads both optional name sources.
//
// An empty path or a missing file leaves that source unavailable and logs an
// informational message; any other failure is returned.
func Resolve(vpcPath, accountPath string, logger *log.Logger) (Maps, error) {
	if logger == nil {
		logger = log.Default()
	}
	var m Maps

	vpcs, err := loadOptional(vpcPath, LoadVPCNames)
	switch {
	case err != nil:
		return Maps{}, err
	case vpcs == nil:
		logger.Infof("Didn't find %s file, using VPC IDs instead of VPC names.", displayPath(vpcPath, "VPC inventory"))
	default:
		m.VPCs, m.HaveVPCs = vpcs, true
		logger.Debug("loaded VPC names", "path", vpcPath, "count", len(vpcs))
	}

	accounts, err := loadOptional(accountPath, LoadAccountNames)
	switch {
	case err != nil:
		return Maps{}, err
	case accounts == nil:
		logger.Infof("Didn't find %s file, cannot include account names in labels.", displayPath(accountPath, "account"))
	default:
		m.Accounts, m.HaveAccounts = accounts, true
		logger.Debug("loaded account names", "path", accountPath, "count", len(accounts))
	}

	return m, nil
}

// loadOptional returns (nil, nil) when path is empty or the file is missing.
func loadOptional(path string, load func(string) (map[string]string, error)) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	out, err := load(path)
	if perrors.Is(err, perrors.ErrCodeFileNotFound) {
		return nil, nil
	}
	return out, err
}

func displayPath(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}

// CountNamed returns how many of the graph's VPCs have a known name.
// The graph is only read.
func (m Maps) CountNamed(g *graph.Graph) int {
	named := 0
	for _, n := range g.Nodes() {
		if _, ok := m.VPCName(n.ID); ok {
			named++
		}
	}
	return named
}
