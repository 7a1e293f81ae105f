package extractor

import "strings"

const detailPage = `<!DOCTYPE html>
<html lang="hu">
<head>
  <meta charset="utf-8">
  <meta http-equiv="X-UA-Compatible" content="IE=edge">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta name="robots" content="index, follow">
  <meta name="description" content="Eladó 65 m²-es tégla lakás, Budapest VI.
 6. kerület (Terézváros), 39,9 millió Ft">
  <title>Eladó tégla lakás - Budapest VI. kerület
  #24016633</title>
  <script>var price = "1 000 Ft";</script>
</head>
<body>
  <div class="parameters">
    <div class="parameter-price"><span class="parameter-value">39,9 millió Ft</span></div>
    <div class="parameter-area-size"><span class="parameter-value">65 m²</span></div>
    <div class="parameter-room"><span class="parameter-value">2 + 1 fél szoba</span></div>
  </div>
  <img class="static-map" src="https://maps.googleapis.com/maps/api/staticmap?center=47.5024853,19.0621734&zoom=15&size=640x300" alt="Térkép">
  <p>Hirdetéskód: <b class="listing-id">24016633</b></p>
  <table class="paramterers">
    <tr><td>Ingatlan állapota</td>
        <td>felújított</td></tr>
    <tr><td>Komfort</td>
        <td>összkomfortos</td></tr>
    <tr><td>Emelet</td>
        <td>3</td></tr>
    <tr><td>Épület szintjei</td>
        <td>4</td></tr>
    <tr><td>Lift</td>
        <td>van</td></tr>
    <tr><td>Belmagasság</td>
        <td>3 m vagy magasabb</td></tr>
    <tr><td>Fűtés</td>
        <td>gáz (cirko)</td></tr>
    <tr><td>Légkondicionáló</td>
        <td>nincs</td></tr>
    <tr><td>Fürdő és WC</td>
        <td>külön helyiségben</td></tr>
    <tr><td>Tájolás</td>
        <td>dél-nyugat</td></tr>
    <tr><td>Kilátás</td>
        <td>utcai</td></tr>
    <tr><td>Erkély</td>
        <td>5.5 m²</td></tr>
    <tr><td>Parkolás</td>
        <td>utcán, közterületen</td></tr>
    <tr><td>Tetőtér</td>
        <td>nem tetőtéri</td></tr>
  </table>
</body>
</html>`

// pageWithout returns detailPage with every line containing fragment removed.
func pageWithout(fragments ...string) string {
	lines := strings.Split(detailPage, "\n")
	out := lines[:0]
	for _, l := range lines {
		keep := true
		for _, f := range fragments {
			if strings.Contains(l, f) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
