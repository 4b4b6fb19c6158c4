package service

import "html/template"

// Map page constants. The page is consumed inside the app's WebView and talks
// to its host through ReactNativeWebView.postMessage / window message events.
const (
	kakaoAppKey      = "833752abac2c28495e49b0022c9c07cd"
	defaultCenterLat = 37.24821748851879
	defaultCenterLon = 127.07832374125279
	defaultLevel     = 4
	markerImageURL   = "https://iili.io/K27I8le.png"
)

type mapPageData struct {
	StoresJSON     template.JS
	AppKey         string
	CenterLat      float64
	CenterLon      float64
	Level          int
	MarkerImageURL string
}

var mapPageTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8"/>
    <title>Kakao Map</title>
    <meta name="viewport" content="width=device-width,initial-scale=1.0">
    <script src="https://dapi.kakao.com/v2/maps/sdk.js?appkey={{.AppKey}}&libraries=services"></script>
    <style>
      html, body { margin: 0; padding: 0; height: 100%; }
      #map { width: 100%; height: 100%; border: 1px solid #ccc; }
    </style>
    <link rel="stylesheet" as="style" crossorigin href="https://cdn.jsdelivr.net/gh/orioncactus/pretendard@v1.3.9/dist/web/static/pretendard.min.css"/>
  </head>
  <body>
    <div id="map"></div>
    <script>
      const stores = {{.StoresJSON}};
      const OVERLAY_STYLE = 'font-size:10px;font-weight:bold;color:#3B4483;font-family:Pretendard;background-color:white;padding:2px 6px;border:1px solid #ddd;border-radius:12px;white-space:nowrap;position:relative;margin-top:5px;cursor:pointer;user-select:none;-webkit-user-select:none;-moz-user-select:none;-ms-user-select:none;-webkit-tap-highlight-color:transparent;outline:none;';

      let map, allMarkers = [], allOverlays = [];

      const markerImage = new kakao.maps.MarkerImage('{{.MarkerImageURL}}', new kakao.maps.Size(24, 24));

      const panTo = (lat, lon) => map.panTo(new kakao.maps.LatLng(lat, lon));

      const postMessage = (msg) => {
        window.ReactNativeWebView?.postMessage(typeof msg === 'string' ? msg : JSON.stringify(msg));
      };

      const clearMarkers = () => {
        allMarkers.forEach(m => m.setMap(null));
        allMarkers = [];
        allOverlays.forEach(o => o.setMap(null));
        allOverlays = [];
      };

      const createOverlay = (id, name, lat, lon) => {
        const div = document.createElement('div');
        div.id = id;
        div.style.cssText = OVERLAY_STYLE;
        div.textContent = name;
        return new kakao.maps.CustomOverlay({
          position: new kakao.maps.LatLng(lat, lon),
          content: div.outerHTML,
          yAnchor: 0.2,
          xAnchor: 0.5
        });
      };

      const renderMarkers = (filteredStores) => {
        clearMarkers();
        if (!filteredStores?.length) return;

        filteredStores.forEach(store => {
          if (!store.lat || !store.lon) return;

          const pos = new kakao.maps.LatLng(store.lat, store.lon);
          const marker = new kakao.maps.Marker({
            map,
            position: pos,
            title: store.name,
            image: markerImage
          });

          const overlayId = 'o-' + store.id;
          const overlay = createOverlay(overlayId, store.name, store.lat, store.lon);

          const handleClick = () => {
            postMessage(store);
            panTo(store.lat, store.lon);
          };

          overlay.setMap(map);
          kakao.maps.event.addListener(marker, 'click', handleClick);
          setTimeout(() => {
            document.getElementById(overlayId)?.addEventListener('click', handleClick);
          }, 50);

          allMarkers.push(marker);
          allOverlays.push(overlay);
        });
      };

      const handleMessage = (event) => {
        try {
          const data = JSON.parse(event.data);
          const { type, payload } = data;

          if (type === 'mapCenter') {
            panTo(payload.lat, payload.lon);
          } else if (type === 'category') {
            if (payload === '') {
              renderMarkers(stores);
              postMessage({ type: 'filteredStores', payload: [] });
              return;
            }

            const filtered = stores.filter(s => s.category === payload);
            renderMarkers(filtered);
            postMessage({ type: 'filteredStores', payload: filtered });

            if (filtered[0]) {
              panTo(filtered[0].lat, filtered[0].lon);
            }
          } else if (type === 'search') {
            const found = stores.filter(s => s.name.toLowerCase().includes(payload.toLowerCase()));
            if (found[0]) {
              postMessage(found[0]);
              panTo(found[0].lat, found[0].lon);
            }
          }
        } catch (e) {
          console.error('Parse error:', e);
        }
      };

      window.onload = () => {
        if (!kakao?.maps?.LatLng) {
          return console.error('Kakao Maps unavailable');
        }

        map = new kakao.maps.Map(document.getElementById('map'), {
          center: new kakao.maps.LatLng({{.CenterLat}}, {{.CenterLon}}),
          level: {{.Level}}
        });

        kakao.maps.event.addListener(map, 'click', () => {
          postMessage({ type: 'mapClick' });
        });

        renderMarkers(stores);
      };

      window.addEventListener('message', handleMessage);
    </script>
  </body>
</html>
`))
