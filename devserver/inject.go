package devserver

import (
	"bytes"

	"github.com/lixenwraith/gridsketch/parameter"
)

// ReloadScript subscribes the page to reload events, falling back to the websocket
// endpoint where EventSource is unavailable
const ReloadScript = `<script>(function(){
var reload=function(d){try{if(JSON.parse(d).type==="reload"){location.reload();}}catch(e){}};
if(window.EventSource){var es=new EventSource("` + parameter.ReloadEventPath + `");es.onmessage=function(e){reload(e.data);};return;}
var p=location.protocol==="https:"?"wss://":"ws://";
var ws=new WebSocket(p+location.host+"` + parameter.ReloadSocketPath + `");ws.onmessage=function(e){reload(e.data);};
})();</script>`

var closingBody = []byte("</body>")

// InjectReloadScript inserts the reload script before the last </body>, or appends it
func InjectReloadScript(page []byte) []byte {
	i := bytes.LastIndex(bytes.ToLower(page), closingBody)
	if i < 0 {
		out := make([]byte, 0, len(page)+len(ReloadScript))
		out = append(out, page...)
		return append(out, ReloadScript...)
	}
	out := make([]byte, 0, len(page)+len(ReloadScript))
	out = append(out, page[:i]...)
	out = append(out, ReloadScript...)
	return append(out, page[i:]...)
}
