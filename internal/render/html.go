// Package render turns a keyframe timeline into viewable output: a
// self-contained HTML animation and a terminal ASCII preview.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// htmlPage is a single-file viewer: the timeline is embedded as JSON and
// played back on a canvas with linear interpolation between keyframes.
const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; background: #1e1e2e; color: #cdd6f4; margin: 2em; }
  canvas { background: #181825; border-radius: 8px; }
  .controls { margin: 1em 0; }
  button { font-size: 1em; padding: 0.3em 1em; }
  #beat { display: inline-block; min-width: 6em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<canvas id="floor" width="600" height="600"></canvas>
<div class="controls">
  <button id="play">Play</button>
  <input type="range" id="scrub" min="0" max="1000" value="0" style="width:300px">
  <span id="beat">beat 0.0</span>
</div>
<script>
const frames = {{.Frames}};
const colors = {up_lark: "#89b4fa", up_robin: "#f38ba8", down_lark: "#74c7ec", down_robin: "#eba0ac"};
const canvas = document.getElementById("floor");
const ctx = canvas.getContext("2d");
const scale = 100, cx = canvas.width / 2, cy = canvas.height / 2;
const lastBeat = frames[frames.length - 1].beat;

function poseAt(beat) {
  let i = frames.findIndex(f => f.beat >= beat);
  if (i <= 0) return frames[Math.max(i, 0)];
  const a = frames[i - 1], b = frames[i];
  const t = (beat - a.beat) / (b.beat - a.beat || 1);
  const dancers = {};
  for (const id in a.dancers) {
    const p = a.dancers[id], q = b.dancers[id];
    dancers[id] = {x: p.x + (q.x - p.x) * t, y: p.y + (q.y - p.y) * t, facing: q.facing};
  }
  return {beat: beat, dancers: dancers, hands: a.hands};
}

function draw(frame) {
  ctx.clearRect(0, 0, canvas.width, canvas.height);
  ctx.strokeStyle = "#313244";
  ctx.beginPath(); ctx.moveTo(cx, 0); ctx.lineTo(cx, canvas.height); ctx.stroke();
  for (const link of frame.hands || []) {
    const a = frame.dancers[link.a], b = frame.dancers[link.b];
    ctx.strokeStyle = "#a6adc8";
    ctx.beginPath();
    ctx.moveTo(cx + a.x * scale, cy - a.y * scale);
    ctx.lineTo(cx + b.x * scale, cy - b.y * scale);
    ctx.stroke();
  }
  for (const id in frame.dancers) {
    const p = frame.dancers[id];
    const px = cx + p.x * scale, py = cy - p.y * scale;
    const rad = (p.facing || 0) * Math.PI / 180;
    ctx.fillStyle = colors[id] || "#ffffff";
    ctx.beginPath(); ctx.arc(px, py, 12, 0, 2 * Math.PI); ctx.fill();
    ctx.strokeStyle = ctx.fillStyle;
    ctx.beginPath();
    ctx.moveTo(px, py);
    ctx.lineTo(px + 20 * Math.sin(rad), py - 20 * Math.cos(rad));
    ctx.stroke();
  }
  document.getElementById("beat").textContent = "beat " + frame.beat.toFixed(1);
}

let playing = false, beat = 0;
const scrub = document.getElementById("scrub");
document.getElementById("play").onclick = () => { playing = !playing; };
scrub.oninput = () => { beat = scrub.value / 1000 * lastBeat; playing = false; draw(poseAt(beat)); };
setInterval(() => {
  if (!playing) return;
  beat = (beat + 0.1) % lastBeat;
  scrub.value = beat / lastBeat * 1000;
  draw(poseAt(beat));
}, 50);
draw(frames[0]);
</script>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("page").Parse(htmlPage))

// WriteHTML renders the timeline as a self-contained HTML page.
func WriteHTML(w io.Writer, title string, frames []dance.Keyframe) error {
	if len(frames) == 0 {
		return fmt.Errorf("render: no frames to render")
	}
	raw, err := json.Marshal(frames)
	if err != nil {
		return fmt.Errorf("render: marshal frames: %w", err)
	}
	return htmlTmpl.Execute(w, struct {
		Title  string
		Frames template.JS
	}{Title: title, Frames: template.JS(raw)})
}
