package srv

const resultPageHTML = `<!DOCTYPE html>
<html lang="th">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>

<!-- OGP -->
<meta property="og:title" content="%s">
<meta property="og:description" content="%s">
<meta property="og:image" content="%s">
<meta property="og:url" content="%s">
<meta property="og:type" content="website">
<meta property="og:image:width" content="1200">
<meta property="og:image:height" content="630">

<!-- Twitter Card -->
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="%s">
<meta name="twitter:description" content="%s">
<meta name="twitter:image" content="%s">

<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=Sarabun:wght@300;400;600;700&family=Charm:wght@400;700&display=swap" rel="stylesheet">
<style>
*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
:root{
  --primary:#8a5a2b;--primary-dark:#6b4420;
  --pass:#2f7d4f;--fail:#b83a2a;
  --bg:#f7f2e7;--surface:#fcf9f2;--surface2:#efe7d6;
  --text:#2c2420;--text2:#857868;--text3:#c4b8a8;
  --radius:4px;--shadow:0 1px 4px rgba(44,36,32,.08);
  --border:#dcd2c0;
  --font-body:'Sarabun',sans-serif;
  --font-head:'Charm',serif;
}
body{
  font-family:var(--font-body);
  background:var(--bg);color:var(--text);
  min-height:100dvh;line-height:1.8;
}
.header{
  text-align:center;padding:2.5rem 1rem 2rem;
  border-bottom:1px solid var(--border);
}
.header h1{font-family:var(--font-head);font-size:2.8rem;font-weight:700;letter-spacing:.05em}
.header a{color:inherit;text-decoration:none}
.header p{font-size:.9rem;color:var(--text2);margin-top:.4rem}
.container{max-width:680px;margin:0 auto;padding:1.5rem 1rem}
.card{
  background:var(--surface);border:1px solid var(--border);
  border-radius:var(--radius);padding:1.5rem;box-shadow:var(--shadow);margin-bottom:1rem;
}
.card h2{
  font-size:1.1rem;margin-bottom:1rem;padding-bottom:.5rem;
  border-bottom:1px solid var(--border);
}
.verdict{text-align:center;font-size:1.2rem;font-weight:700;margin-bottom:1rem}
.verdict.pass{color:var(--pass)}
.verdict.fail{color:var(--fail)}
.stanza{display:grid;grid-template-columns:1fr 1fr;gap:.3rem 1.5rem;margin-bottom:1rem}
.verse{padding:.2rem .5rem;border-left:3px solid var(--pass)}
.verse.red{border-left-color:var(--fail);color:var(--fail)}
.messages{list-style:none}
.messages li{
  padding:.5rem .75rem;margin-bottom:.4rem;font-size:.9rem;
  background:var(--surface2);border-radius:var(--radius);border:1px solid var(--border);
}
.pairs{list-style:none;font-size:.85rem;color:var(--text2)}
.pairs li.miss{color:var(--fail)}
.cta{text-align:center;margin-top:1.5rem}
.btn{
  display:inline-block;padding:.7rem 2.5rem;border-radius:var(--radius);
  font-weight:700;text-decoration:none;background:var(--primary);color:#fff;
  border:1px solid var(--primary-dark);
}
.btn:hover{background:var(--primary-dark)}
.footer{text-align:center;padding:2rem;color:var(--text3);font-size:.8rem}
</style>
</head>
<body>
<div class="header">
  <h1><a href="/">สัมผัส</a></h1>
  <p>ตรวจสัมผัสกลอนแปด</p>
</div>
<div class="container">
  <div class="card">
    <p class="verdict" id="verdict"></p>
    <div id="poem"></div>
  </div>
  <div class="card" id="messagesCard">
    <h2>จุดที่ไม่สัมผัส</h2>
    <ul class="messages" id="messages"></ul>
  </div>
  <div class="card">
    <h2>คู่สัมผัส</h2>
    <ul class="pairs" id="pairs"></ul>
  </div>
  <div class="cta">
    <a class="btn" href="/">ตรวจกลอนของคุณ</a>
  </div>
</div>
<div class="footer">สัมผัส · กลอนแปด</div>
<script>
const data = %s;
const result = data.result;
const report = result.report || {};
const lines = data.lines || [];
const statuses = report.lists_status || [];

const verdict = document.getElementById('verdict');
if (result.failures === 0) {
  verdict.textContent = 'สัมผัสครบถ้วน';
  verdict.className = 'verdict pass';
} else {
  verdict.textContent = 'ผิดสัมผัส ' + result.failures + ' จุด';
  verdict.className = 'verdict fail';
}

const poem = document.getElementById('poem');
for (let i = 0; i < lines.length; i += 8) {
  const stanza = document.createElement('div');
  stanza.className = 'stanza';
  lines.slice(i, i + 8).forEach((line, j) => {
    const div = document.createElement('div');
    div.className = 'verse ' + (statuses[i + j] || 'green');
    div.textContent = line;
    stanza.appendChild(div);
  });
  poem.appendChild(stanza);
}

const messages = report.messages || [];
if (messages.length === 0) {
  document.getElementById('messagesCard').style.display = 'none';
}
const mList = document.getElementById('messages');
messages.forEach(m => {
  const li = document.createElement('li');
  li.textContent = m;
  mList.appendChild(li);
});

const pList = document.getElementById('pairs');
(report.display_words || []).forEach(p => {
  const li = document.createElement('li');
  li.textContent = (p.matched || p.rescued ? '✓ ' : '✗ ') + p.description;
  if (!p.matched && !p.rescued) li.className = 'miss';
  pList.appendChild(li);
});
</script>
</body>
</html>`
