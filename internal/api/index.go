package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// indexPage serves the single-page form: file upload, translate toggle,
// submit, and the three outputs (Chinese text, English text, report link).
func (h *Handlers) indexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Chinese Audio to English Translator</title>
<style>
  body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; }
  textarea { width: 100%; height: 10rem; }
  .row { display: flex; gap: 1rem; }
  .row > div { flex: 1; }
  button { padding: .5rem 1.5rem; }
  #report a { display: inline-block; margin-top: .5rem; }
</style>
</head>
<body>
  <h1>Chinese Audio to English Translator</h1>
  <p>Upload a Chinese audio file (MP3, WAV, etc.): it is transcribed to Chinese text,
  optionally translated to English, and exported as a Markdown report.</p>

  <form id="form">
    <p><input type="file" name="file" accept="audio/*"></p>
    <p><label><input type="checkbox" name="translate" checked> Translate to English
      <small>(uncheck if you only need the Chinese transcription)</small></label></p>
    <p><button type="submit">Transcribe &amp; Translate</button></p>
  </form>

  <div class="row">
    <div><h3>Chinese Transcript</h3><textarea id="chinese" readonly></textarea></div>
    <div><h3>English Translation</h3><textarea id="english" readonly></textarea></div>
  </div>
  <div id="report"></div>

<script>
document.getElementById('form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const form = e.target;
  const data = new FormData();
  if (form.file.files[0]) data.append('file', form.file.files[0]);
  data.append('translate', form.translate.checked);
  const resp = await fetch('/api/v1/process', { method: 'POST', body: data });
  const body = await resp.json();
  const out = body.data || {};
  document.getElementById('chinese').value = out.chinese_text || '';
  document.getElementById('english').value = out.english_text || '';
  const report = document.getElementById('report');
  report.innerHTML = out.report
    ? '<a href="/reports/' + out.report + '">Download Markdown Report</a>'
    : '';
});
</script>
</body>
</html>
`
