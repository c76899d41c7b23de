package preview

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>canvas2d preview</title>
<style>body{margin:0;background:#888;display:flex;justify-content:center;align-items:center;min-height:100vh}img{background:repeating-conic-gradient(#ccc 0 25%,#fff 0 50%) 0 0/16px 16px}</style>
</head>
<body>
<img id="frame" alt="no frame yet">
<script>
const img = document.getElementById("frame");
function load(rev) { img.src = "/frame.png?rev=" + rev; }
function connect() {
  const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  ws.onmessage = (ev) => load(JSON.parse(ev.data).revision);
  ws.onclose = () => setTimeout(connect, 1000);
}
connect();
</script>
</body>
</html>
`
