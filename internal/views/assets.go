package views

const Stylesheet = `* { margin: 0; padding: 0; box-sizing: border-box; }

body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
	background: #f4f5f7;
	color: #1f2430;
}

.container {
	height: 100vh;
	overflow-y: auto;
	padding: 0 1rem 2rem;
}

form {
	position: sticky;
	top: 0;
	z-index: 2;
	display: flex;
	gap: 0.75rem;
	align-items: center;
	padding: 1rem 0;
	background: #f4f5f7;
	transition: transform 0.3s ease;
}
form.hide { transform: translateY(-110%); }
form input { padding: 0.4rem 0.6rem; border: 1px solid #c9ccd3; border-radius: 4px; }
form button { padding: 0.45rem 1rem; border: 0; border-radius: 4px; background: #2e6be6; color: #fff; cursor: pointer; }

.loading { display: none; padding: 2rem; text-align: center; color: #5a6170; }
.loading.active { display: block; }

.error { margin: 1rem 0; padding: 0.75rem 1rem; border-radius: 4px; background: #fde8e8; color: #9b1c1c; }

.job-count { margin: 1rem 0; }

.job-card {
	margin-bottom: 1.25rem;
	padding: 1.25rem;
	border-radius: 8px;
	background: #fff;
	box-shadow: 0 1px 3px rgba(0, 0, 0, 0.08);
	opacity: 0;
	transform: translateX(-40px);
	transition: opacity 0.5s ease, transform 0.5s ease;
}
.job-card.show { opacity: 1; transform: none; }

.job-title { font-size: 1.2rem; margin-bottom: 0.5rem; }
.job-desc { margin: 0.5rem 0 1rem; line-height: 1.5; }
.job-grid { display: grid; grid-template-columns: 1fr 300px; gap: 1rem; }
.job-left > div { margin-bottom: 0.3rem; }
.job-link a { color: #2e6be6; font-weight: 600; }
.job-map img { width: 100%; max-width: 300px; border-radius: 6px; }

@media (max-width: 700px) {
	form { flex-direction: column; align-items: stretch; }
	.job-grid { grid-template-columns: 1fr; }
}
`

// PlaceholderSVG stands in for the map when the first listing has no position.
const PlaceholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="280" height="160" viewBox="0 0 280 160">
	<rect width="280" height="160" fill="#e3e6ec"/>
	<path d="M140 48c-14 0-25 11-25 25 0 19 25 43 25 43s25-24 25-43c0-14-11-25-25-25zm0 34a9 9 0 1 1 0-18 9 9 0 0 1 0 18z" fill="#a3aab8"/>
	<text x="140" y="140" font-family="sans-serif" font-size="12" text-anchor="middle" fill="#7b8292">No location</text>
</svg>
`
