package web

// indexHTML は配信する単一ページです。
// 生成中はボタンを無効化し、多重送信をページ側で防ぎます。
const indexHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="UTF-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
<title>Gemini Canvas - アスペクト比固定 画像生成</title>
<script src="https://cdn.tailwindcss.com"></script>
<style>
body { font-family: Inter, system-ui, -apple-system, Segoe UI, Roboto, sans-serif; }
.loader{border:8px solid #f3f3f3;border-top:8px solid #6366f1;border-radius:50%;width:56px;height:56px;animation:spin 1.2s linear infinite}
@keyframes spin{0%{transform:rotate(0)}100%{transform:rotate(360deg)}}
.result-preview{width:100%;min-height:320px;background:#f3f4f6;border:2px dashed #d1d5db;display:flex;align-items:center;justify-content:center;overflow:hidden;border-radius:8px}
.result-preview img{max-width:100%;max-height:512px;object-fit:contain}
</style>
</head>
<body class="bg-gray-50 text-gray-800">
<div class="container mx-auto p-4 md:p-8 max-w-3xl">

<header class="text-center mb-8">
<h1 class="text-3xl md:text-4xl font-bold text-gray-900">Gemini Canvas</h1>
<p class="text-gray-600 mt-2">プロンプトとアスペクト比を指定して画像を生成します</p>
</header>

<main class="bg-white p-6 md:p-8 rounded-2xl shadow-lg">
<form id="generate-form">
<div class="space-y-6 mb-6">
<div>
<label class="block text-lg font-semibold mb-2 text-gray-700" for="prompt">プロンプト</label>
<textarea id="prompt" name="prompt" rows="4"
class="w-full px-4 py-3 border border-gray-300 rounded-lg focus:ring-2 focus:ring-indigo-500 focus:border-indigo-500"
placeholder="例: 夕焼けの海岸を走る黄色いスポーツカー"></textarea>
</div>

<div>
<label class="block text-lg font-semibold mb-2 text-gray-700" for="aspect-ratio">アスペクト比</label>
<select id="aspect-ratio" name="aspect_ratio"
class="w-full px-4 py-3 border border-gray-300 rounded-lg focus:ring-2 focus:ring-indigo-500 focus:border-indigo-500">
<option value="1:1">1:1 (正方形)</option>
<option value="16:9" selected>16:9 (横長)</option>
<option value="9:16">9:16 (縦長)</option>
<option value="4:3">4:3</option>
<option value="3:4">3:4</option>
</select>
</div>
</div>

<div class="text-center mb-6">
<button type="submit" id="submit-btn"
class="bg-gradient-to-r from-indigo-500 to-purple-600 text-white font-bold py-3 px-12 rounded-full hover:shadow-xl transition-all text-lg disabled:opacity-50 disabled:cursor-not-allowed">
画像を生成
</button>
</div>
</form>

<div id="error-region" class="hidden mb-6 p-4 bg-red-50 border border-red-200 text-red-700 rounded-lg whitespace-pre-wrap"></div>
<div id="message-region" class="hidden mb-6 p-4 bg-yellow-50 border border-yellow-200 text-yellow-800 rounded-lg"></div>

<div class="result-preview" id="result-region">
<div id="placeholder-text" class="text-gray-400">ここに生成結果が表示されます</div>
<div id="busy-loader" class="loader hidden"></div>
<img id="result-image" class="hidden" alt="生成された画像"/>
</div>

<div class="text-center mt-4">
<a id="download-link" class="hidden inline-block px-6 py-2 rounded-lg border border-indigo-300 text-indigo-600 hover:bg-indigo-50 transition-all" download>画像をダウンロード</a>
</div>
</main>

</div>

<script>
(function () {
	var form = document.getElementById('generate-form');
	var submitBtn = document.getElementById('submit-btn');
	var errorRegion = document.getElementById('error-region');
	var messageRegion = document.getElementById('message-region');
	var placeholderText = document.getElementById('placeholder-text');
	var busyLoader = document.getElementById('busy-loader');
	var resultImage = document.getElementById('result-image');
	var downloadLink = document.getElementById('download-link');

	function setBusy(busy) {
		submitBtn.disabled = busy;
		busyLoader.classList.toggle('hidden', !busy);
		if (busy) {
			placeholderText.classList.add('hidden');
			resultImage.classList.add('hidden');
			downloadLink.classList.add('hidden');
			errorRegion.classList.add('hidden');
			messageRegion.classList.add('hidden');
		}
	}

	form.addEventListener('submit', function (e) {
		e.preventDefault();
		setBusy(true);

		var payload = {
			prompt: document.getElementById('prompt').value,
			aspect_ratio: document.getElementById('aspect-ratio').value
		};

		fetch('/api/generate', {
			method: 'POST',
			headers: { 'Content-Type': 'application/json' },
			body: JSON.stringify(payload)
		}).then(function (res) {
			return res.json();
		}).then(function (body) {
			if (body.status === 'succeeded') {
				resultImage.src = body.image;
				resultImage.classList.remove('hidden');
				downloadLink.href = body.image;
				downloadLink.download = body.filename;
				downloadLink.classList.remove('hidden');
			} else if (body.status === 'empty') {
				messageRegion.textContent = body.message;
				messageRegion.classList.remove('hidden');
				placeholderText.classList.remove('hidden');
			} else {
				errorRegion.textContent = body.error;
				errorRegion.classList.remove('hidden');
				placeholderText.classList.remove('hidden');
			}
		}).catch(function (err) {
			errorRegion.textContent = String(err);
			errorRegion.classList.remove('hidden');
			placeholderText.classList.remove('hidden');
		}).finally(function () {
			setBusy(false);
		});
	});
})();
</script>
</body>
</html>
`
