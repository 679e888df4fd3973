package api

var tmpl = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Video to MP3</title>
    <style>
        :root { --bg: #121212; --card: #1e1e1e; --text: #e0e0e0; --accent: #ff4444; --ok: #3ecf8e; }
        body { background: var(--bg); color: var(--text); font-family: system-ui, sans-serif; display: grid; place-items: center; min-height: 100vh; margin: 0; }
        .container { background: var(--card); padding: 2rem; border-radius: 12px; box-shadow: 0 10px 30px rgba(0,0,0,0.5); width: 90%; max-width: 400px; text-align: center; }
        h1 { margin: 0 0 1rem; font-size: 1.5rem; color: var(--accent); }
        input { width: 100%; padding: 12px; margin: 10px 0; border: 1px solid #333; border-radius: 6px; background: #252525; color: #fff; box-sizing: border-box; outline: none; }
        button { width: 100%; padding: 12px; border: none; border-radius: 6px; background: var(--accent); color: white; font-weight: bold; cursor: pointer; }
        .notification { margin-top: 20px; line-height: 1.6; }
        .is-hidden { display: none; }
        #convert_error { color: var(--accent); }
        #convert_success { color: var(--ok); }
        a { color: #4ea8de; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Video to MP3</h1>
        <form method="post" action="/convert">
            <input type="text" name="video_url" value="{{.VideoURL}}" placeholder="Paste a YouTube URL...">
            <button type="submit" id="convert">Convert</button>
        </form>
        <div id="convert_error" class="notification{{if not .ErrorShown}} {{.HiddenClass}}{{end}}">
            The video could not be submitted. Check the link and try again.
        </div>
        <div id="convert_success" class="notification{{if not .SuccessShown}} {{.HiddenClass}}{{end}}">
            Your mp3 is being prepared.
            <a id="mp3_download_link" href="{{.LinkURL}}">Download</a>
        </div>
    </div>
</body>
</html>
`
