// Package io provides JSON export of rendered peering reports.
//
// # Overview
//
// The JSON sink is the machine-readable companion of the HTML page. It holds
// exactly the nodes, edges and legend the page shows, plus the run metadata
// (report id, build version, generation time and the filters applied), so
// other tools can consume a report without scraping HTML.
//
// # JSON Format
//
//	{
//	  "id": "4f1c...",
//	  "version": "v0.3.0",
//	  "generated": "2024-01-02T03:04:05Z",
//	  "filters": {"accounts": ["111111111111"]},
//	  "nodes": [{"id": "vpc-0a1b2c3d", "label": "prod", "color": "#1f77b4", ...}],
//	  "edges": [{"from": "vpc-0a1b2c3d", "to": "vpc-9f8e7d6c", "label": "pcx-0123", ...}],
//	  "legend": [{"account_id": "111111111111", "account_name": "production", "color": "#1f77b4"}]
//	}
//
// Empty reports always carry empty arrays rather than null.
//
// # Usage
//
//	var buf bytes.Buffer
//	err := io.WriteJSON(view, io.Meta{ID: id, Version: buildinfo.Version}, &buf)
package io
