package views

import (
	"bytes"
	"fmt"
	"text/template"
)

// scriptTemplate is the browser side of a search: form binding, the request
// and its loading indicator, the card reveal observer and the header hider.
// It uses [[ ]] delimiters so JS braces need no escaping.
const scriptTemplate = `(function () {
  'use strict';

  function must(selector) {
    var el = document.querySelector(selector);
    if (!el) {
      throw new Error('job search: missing element ' + selector);
    }
    return el;
  }

  var els = {
    form: must('form'),
    job: must('.[[js .DOM.JobInput]]'),
    city: must('.[[js .DOM.CityInput]]'),
    results: must('.[[js .DOM.Results]]'),
    loading: must('.[[js .DOM.Loading]]'),
    container: must('.[[js .DOM.Container]]')
  };

  var ACTIVE = '[[js .DOM.ActiveClass]]';
  var SHOW = '[[js .DOM.ShowClass]]';
  var HIDE = '[[js .DOM.HideClass]]';
  var CARD = '.[[js .DOM.Card]]';
  var ENDPOINT = '[[js .Endpoint]]';
  var REVEAL = { rootMargin: '[[js .Reveal.RootMargin]]', threshold: [[printf "%g" .Reveal.Threshold]] };

  function Revealer() {
    this.observer = null;
  }

  // attach drops the previous observer and watches every card currently in the DOM.
  Revealer.prototype.attach = function () {
    if (this.observer) {
      this.observer.disconnect();
    }
    this.observer = new IntersectionObserver(function (entries) {
      entries.forEach(function (entry) {
        if (entry.isIntersecting && entry.intersectionRatio >= REVEAL.threshold) {
          entry.target.classList.add(SHOW);
        } else {
          entry.target.classList.remove(SHOW);
        }
      });
    }, REVEAL);
    var observer = this.observer;
    document.querySelectorAll(CARD).forEach(function (card) {
      observer.observe(card);
    });
  };

  function HeaderHider(container, form) {
    this.lastScrollTop = 0;
    var self = this;
    container.addEventListener('scroll', function () {
      self.update(container.scrollTop);
    });
    this.form = form;
  }

  HeaderHider.prototype.update = function (scrollTop) {
    if (scrollTop > this.lastScrollTop) {
      this.form.classList.add(HIDE);
    } else {
      this.form.classList.remove(HIDE);
    }
    this.lastScrollTop = scrollTop <= 0 ? 0 : Number(scrollTop);
  };

  var revealer = new Revealer();
  new HeaderHider(els.container, els.form);

  // localizeDates reprints each card date as d/m/yyyy in the browser's zone.
  function localizeDates(root) {
    root.querySelectorAll('time[datetime]').forEach(function (el) {
      var d = new Date(el.getAttribute('datetime'));
      if (!isNaN(d.getTime())) {
        el.textContent = d.getDate() + '/' + (d.getMonth() + 1) + '/' + d.getFullYear();
      }
    });
  }

  // render is the only writer of the results area; the reveal observer is
  // re-attached every time the markup changes.
  function render(html) {
    els.results.innerHTML = html;
    localizeDates(els.results);
    revealer.attach();
  }

  // Overlapping searches are not guarded: whichever response lands last wins.
  async function search(job, city) {
    els.results.innerHTML = '';
    els.loading.classList.add(ACTIVE);
    var html = '';
    try {
      var params = new URLSearchParams({ what: job, where: city });
      var resp = await fetch(ENDPOINT + '?' + params.toString(), {
        headers: { Accept: 'application/json' }
      });
      var body = null;
      try {
        body = await resp.json();
      } catch (e) {
        body = null;
      }
      if (!resp.ok) {
        throw new Error((body && body.error) || 'Request failed with status code ' + resp.status);
      }
      if (!body || typeof body.html !== 'string') {
        throw new Error('Malformed search response');
      }
      html = body.html;
    } catch (err) {
      html = '';
      if (err && err.message) {
        console.log(err.message);
        alert(err.message);
      }
    } finally {
      els.loading.classList.remove(ACTIVE);
      render(html);
    }
  }

  els.form.addEventListener('submit', function (e) {
    e.preventDefault();
    search(els.job.value, els.city.value);
    els.form.reset();
  });

  localizeDates(els.results);
  revealer.attach();
})();
`

func buildScript(dom DOM, reveal RevealOptions, endpoint string) ([]byte, error) {
	tmpl, err := template.New("script").Delims("[[", "]]").Parse(scriptTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse script template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		DOM      DOM
		Reveal   RevealOptions
		Endpoint string
	}{
		DOM:      dom,
		Reveal:   reveal,
		Endpoint: endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("render script: %w", err)
	}
	return buf.Bytes(), nil
}
