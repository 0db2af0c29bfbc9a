package invitation

// FontStylesheetURL font tetap yang dirujuk setiap dokumen undangan.
const FontStylesheetURL = "https://fonts.googleapis.com/css2?family=Great+Vibes&family=Poppins:wght@300;400;600&display=swap"

// Assemble membungkus badan yang sudah disubstitusi, CSS template, dan JS
// template menjadi satu dokumen HTML lengkap. Konten template masuk verbatim;
// skrip salin selalu ditempel setelah JS template.
func Assemble(body, css, js string) string {
	return `<!DOCTYPE html>
<html lang="id">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>Undangan</title>
  <link href="` + FontStylesheetURL + `" rel="stylesheet">
  <style>` + css + `</style>
</head>
<body>
` + body + `
<script type="text/javascript">
` + js + `
</script>
` + CopyScript + `
</body>
</html>`
}
