// Command replay serves recorded game sessions to a browser. It lists
// the JSONL files produced by the recorder and streams their frames
// over a websocket at a fixed cadence.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/trytobebee/snakecycle/pkg/config"
	"github.com/trytobebee/snakecycle/pkg/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const frameInterval = 100 * time.Millisecond

type replayServer struct {
	addr      string
	recordDir string
	width     int
	height    int
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	configPath := flag.String("config", "", "path to an INI config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	s := &replayServer{
		addr:      *addr,
		recordDir: cfg.RecordDir,
		width:     cfg.Width,
		height:    cfg.Height,
	}

	http.HandleFunc("/", s.handleIndex)
	http.HandleFunc("/view", s.handleView)
	http.HandleFunc("/ws/replay", s.handleReplayWS)

	fmt.Printf("snake replay viewer on http://localhost%s\n", s.addr)
	log.Fatal(http.ListenAndServe(s.addr, nil))
}

type recordFile struct {
	Name      string
	Size      int64
	Time      time.Time
	SessionID string
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Snake Replays</title>
<style>
 body { font-family: monospace; background: #1a202c; color: #fff; padding: 2rem; }
 h1 { color: #48bb78; }
 .file-item { background: #2d3748; padding: 1rem; border-radius: 8px; margin-bottom: 1rem;
              display: flex; justify-content: space-between; align-items: center; }
 a { color: #63b3ed; text-decoration: none; font-weight: bold; }
 .meta { color: #a0aec0; font-size: 0.9em; }
</style>
</head>
<body>
<h1>Replay Library</h1>
{{range .}}
<div class="file-item">
  <div>
    <div>{{.Name}}</div>
    <div class="meta">Session: {{.SessionID}} | {{.Size}} bytes | {{.Time.Format "2006-01-02 15:04:05"}}</div>
  </div>
  <a href="/view?file={{.Name}}">WATCH &#9654;</a>
</div>
{{else}}
<p>No recordings found. Run the game with -record first.</p>
{{end}}
</body>
</html>`))

func (s *replayServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.recordDir)
	if err != nil {
		entries = nil
	}

	var records []recordFile
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".jsonl" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		// Filename format: game_{sessionID}_{timestamp}.jsonl
		parts := strings.Split(e.Name(), "_")
		sessID := ""
		if len(parts) >= 2 {
			sessID = parts[1]
		}
		records = append(records, recordFile{
			Name:      e.Name(),
			Size:      info.Size(),
			Time:      info.ModTime(),
			SessionID: sessID,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})

	indexTmpl.Execute(w, records)
}

var viewTmpl = template.Must(template.New("view").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Snake Replay</title>
<style>
 body { font-family: monospace; background: #1a202c; color: #fff; padding: 2rem; }
 #hud { margin-bottom: 1rem; color: #a0aec0; }
 canvas { background: #0d1117; border: 2px solid #4a5568; }
 button { font-family: monospace; margin-right: .5rem; }
</style>
</head>
<body>
<div id="hud">loading...</div>
<canvas id="board"></canvas>
<p>
 <button onclick="send('pause')">Pause</button>
 <button onclick="send('resume')">Resume</button>
 <a href="/">&#8592; library</a>
</p>
<script>
const cell = 20;
let canvas = document.getElementById('board');
let ctx = canvas.getContext('2d');
let hud = document.getElementById('hud');
let ws = new WebSocket('ws://' + location.host + '/ws/replay?file={{.}}');

function send(cmd) { ws.send(JSON.stringify({command: cmd})); }

ws.onmessage = function (e) {
  let msg = JSON.parse(e.data);
  if (msg.type === 'config') {
    canvas.width = msg.width * cell;
    canvas.height = msg.height * cell;
    return;
  }
  let st = msg.state;
  ctx.fillStyle = '#0d1117';
  ctx.fillRect(0, 0, canvas.width, canvas.height);
  ctx.fillStyle = st.food.special ? '#f6e05e' : '#fc8181';
  ctx.fillRect(st.food.pos.x * cell, st.food.pos.y * cell, cell - 1, cell - 1);
  st.body.forEach(function (p, i) {
    ctx.fillStyle = i === 0 ? '#68d391' : '#38a169';
    ctx.fillRect(p.x * cell, p.y * cell, cell - 1, cell - 1);
  });
  hud.textContent = 'step ' + msg.step + ' | score ' + st.score +
    ' | ' + st.level + (st.gameOver ? ' | GAME OVER' : '');
};
ws.onclose = function () { hud.textContent += ' | replay finished'; };
</script>
</body>
</html>`))

func (s *replayServer) handleView(w http.ResponseWriter, r *http.Request) {
	file := r.URL.Query().Get("file")
	if file == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	viewTmpl.Execute(w, file)
}

func (s *replayServer) handleReplayWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Refuse anything that escapes the record directory.
	name := filepath.Base(r.URL.Query().Get("file"))
	file, err := os.Open(filepath.Join(s.recordDir, name))
	if err != nil {
		log.Println("failed to open record:", err)
		return
	}
	defer file.Close()

	if err := conn.WriteJSON(map[string]any{
		"type":   "config",
		"width":  s.width,
		"height": s.height,
	}); err != nil {
		return
	}

	paused := false
	go func() {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var cmd struct {
				Command string `json:"command"`
			}
			json.Unmarshal(msg, &cmd)
			switch cmd.Command {
			case "pause":
				paused = true
			case "resume":
				paused = false
			}
		}
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec game.StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			log.Println("skipping bad frame:", err)
			continue
		}

		for paused {
			time.Sleep(frameInterval)
		}
		time.Sleep(frameInterval)

		msg := struct {
			Type  string        `json:"type"`
			Step  int64         `json:"step"`
			State game.Snapshot `json:"state"`
		}{
			Type:  "state",
			Step:  rec.Step,
			State: rec.State,
		}
		if err := conn.WriteJSON(msg); err != nil {
			break
		}
	}
}
