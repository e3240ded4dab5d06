package network

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="generator" content="peermap {{.Version}}">
  <title>{{.Title}}</title>
  <script type="text/javascript" src="{{.ScriptURL}}"></script>
  <style>
    body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 0; color: #1e293b; background: #ffffff; }
    header { display: flex; flex-wrap: wrap; gap: 16px; align-items: center; padding: 10px 16px; border-bottom: 1px solid #e2e8f0; }
    header h1 { font-size: 1.1em; margin: 0 16px 0 0; }
    header label { font-size: 0.9em; color: #475569; }
    header select { margin-left: 4px; }
    .stats { font-size: 0.85em; color: #64748b; }
    #peering-network { width: {{.Width}}; height: {{.Height}}; }
    .legend { display: flex; flex-wrap: wrap; gap: 12px; padding: 8px 16px; font-size: 0.85em; }
    .legend-item { display: flex; align-items: center; gap: 6px; }
    .legend-swatch { width: 14px; height: 14px; border-radius: 50%; border: 1px solid #334155; }
    #physics-config { padding: 8px 16px; }
    footer { font-size: 0.75em; color: #94a3b8; padding: 8px 16px; border-top: 1px solid #e2e8f0; }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <label>Select VPC
      <select id="select-node"><option value="">(none)</option></select>
    </label>
    <label>Account
      <select id="filter-account">
        <option value="">(all)</option>
        {{- range .Legend}}
        <option value="{{.AccountID}}">{{.AccountID}} ({{.AccountName}})</option>
        {{- end}}
      </select>
    </label>
    <label>Region
      <select id="filter-region">
        <option value="">(all)</option>
        {{- range .Regions}}
        <option value="{{.}}">{{.}}</option>
        {{- end}}
      </select>
    </label>
    <span class="stats">{{.NodeCount}} VPCs &middot; {{.EdgeCount}} peering connections{{range .Filters}} &middot; {{.}}{{end}}</span>
  </header>
  <div class="legend">
    {{- range .Legend}}
    <span class="legend-item"><span class="legend-swatch" style="background: {{.Color}}"></span>{{.AccountID}} {{.AccountName}}</span>
    {{- end}}
  </div>
  <div id="peering-network"></div>
  <div id="physics-config"></div>
  <footer>Report {{.ReportID}} &middot; generated {{.Generated}} &middot; peermap {{.Version}}</footer>
  <script type="text/javascript">
    const allNodes = new vis.DataSet({{.Nodes}});
    const allEdges = new vis.DataSet({{.Edges}});
    const filter = { account: "", region: "" };

    const visibleNodes = new vis.DataView(allNodes, {
      filter: (n) => (!filter.account || n.account_id === filter.account) &&
                     (!filter.region || n.region === filter.region),
    });

    const container = document.getElementById("peering-network");
    const network = new vis.Network(container, { nodes: visibleNodes, edges: allEdges }, {
      nodes: { shape: "dot", size: 16, font: { size: 14 } },
      edges: { arrows: { to: { enabled: true, scaleFactor: 0.6 } }, font: { size: 10, align: "middle" }, smooth: { type: "dynamic" } },
      interaction: { hover: true, tooltipDelay: 120 },
      physics: { enabled: true, stabilization: { iterations: 200 } },
      configure: { enabled: true, filter: ["physics"], container: document.getElementById("physics-config") },
    });

    const selectNode = document.getElementById("select-node");
    allNodes.get({ order: "label" }).forEach((n) => {
      const opt = document.createElement("option");
      opt.value = n.id;
      opt.textContent = n.label + " (" + n.id + ")";
      selectNode.appendChild(opt);
    });
    selectNode.addEventListener("change", () => {
      const id = selectNode.value;
      if (!id || !visibleNodes.get(id)) {
        network.unselectAll();
        return;
      }
      network.selectNodes([id]);
      network.focus(id, { scale: 1.2, animation: true });
    });

    const refresh = () => {
      visibleNodes.refresh();
      network.fit();
    };
    document.getElementById("filter-account").addEventListener("change", (e) => { filter.account = e.target.value; refresh(); });
    document.getElementById("filter-region").addEventListener("change", (e) => { filter.region = e.target.value; refresh(); });
  </script>
</body>
</html>
`
