package report

const (
	selfColor = "57F"
	oppColor  = "F75"
)

const htmlTemplateStr = `
{{define "head"}}<html>
<head>
  <meta charset="utf-8">
  <meta name="generator" content="culling-graph">
  <meta name="report-id" content="{{.ReportID}}">
  <title>The Culling damage stats</title>
  <style>
body {
  background-color: #222222;
  color: white;
  margin: 0;
  margin-top: 64px;
  padding: 0;
  text-align: center;
  font-size: 80%;
  font-family: Verdana, Geneva, Arial, Helvetica, sans-serif;
  font-weight: normal;
}

td {
  text-align: left;
}

th {
  font-variant: small-caps;
  text-align: left;
}

fieldset {
  text-align: center;
  font-size: 150%;
  padding: 2px;
  border-radius: 1em;
}

th.dmg, td.dmg, th.ann, td.ann {
  text-align: right;
}

th.time {
  text-align: left;
}

td.time {
  font-family: monospace;
}

span.bar {
  display: inline-block;
  text-align: left;
}

span.bar.self {
  background-color: #` + selfColor + `;
}

span.bar.opp {
  background-color: #` + oppColor + `;
}

td.self {
  color: #` + selfColor + `;
}

td.opp {
  color: #` + oppColor + `;
}
  </style>
</head>
<body>
{{end}}

{{define "match"}}  <fieldset><legend><b>Match {{.Num}} @ {{.Start}}</b></legend>

    <table width="100%" border="0" cellspacing="2" cellpadding="0">
      <tr><th class="time">match clock</th><th>inflictor</th><th>receiver</th><th class="dmg">damage</th><th class="dmg">total</th><th><span class="bar" style="width:{{.BarWidthMax}}px">&nbsp;</span></th><th class="ann">crit</th></tr>
{{- range .Rows}}
      <tr><td class="time">{{.Clock}}</td><td class="{{.InfClass}}">{{.Inflictor}}</td><td class="{{.RecClass}}">{{.Receiver}}</td><td class="dmg {{.InfClass}}">{{.Damage}}</td><td class="dmg {{.InfClass}}">({{.Total}})</td><td><span class="bar {{.InfClass}}" style="width:{{.BarWidth}}px">&nbsp;</span></td><td class="ann {{.RecClass}}">{{.Annotation}}</td></tr>
{{- end}}
    </table>
  </fieldset>
  <br />
  <br />
{{end}}

{{define "tail"}}</body>
</html>
{{end}}
`
