package invitation

// Fragmen audio: elemen audio tersembunyi (autoload, loop) plus tombol bundar
// melayang play/pause. Skripnya menyinkronkan ikon lewat event play/pause/ended
// elemen audio sendiri, mencoba memutar pada klik pertama di dokumen (sekali
// saja, untuk melewati pembatasan autoplay browser), dan menjeda saat tab
// disembunyikan tanpa auto-resume.
const (
	audioFragmentHead = `
<audio id="wedding-music" src="`

	audioFragmentTail = `" style="display:none" preload="auto" loop></audio>
<button id="music-toggle-btn" style="position:fixed;right:24px;bottom:24px;width:56px;height:56px;border-radius:50%;background:#8b5cf6;box-shadow:0 2px 8px #0002;display:flex;align-items:center;justify-content:center;z-index:9999;border:none;cursor:pointer;outline:none;">
  <svg id="music-play-icon" xmlns="http://www.w3.org/2000/svg" width="32" height="32" fill="none" stroke="#fff" stroke-width="2" viewBox="0 0 24 24"><polygon points="5,3 19,12 5,21 5,3"/></svg>
  <svg id="music-pause-icon" xmlns="http://www.w3.org/2000/svg" width="32" height="32" fill="none" stroke="#fff" stroke-width="2" viewBox="0 0 24 24" style="display:none;"><rect x="6" y="4" width="4" height="16"/><rect x="14" y="4" width="4" height="16"/></svg>
</button>
<script>(function(){
  var audio = document.getElementById('wedding-music');
  var toggleBtn = document.getElementById('music-toggle-btn');
  var playIcon = document.getElementById('music-play-icon');
  var pauseIcon = document.getElementById('music-pause-icon');
  var isPlaying = false;
  function updateBtn() {
    if(isPlaying) { playIcon.style.display = 'none'; pauseIcon.style.display = ''; }
    else { playIcon.style.display = ''; pauseIcon.style.display = 'none'; }
  }
  function playMusic() { if(audio && audio.src) { audio.play(); isPlaying = true; updateBtn(); } }
  function pauseMusic() { if(audio) { audio.pause(); isPlaying = false; updateBtn(); } }
  toggleBtn.onclick = function() { if(isPlaying) { pauseMusic(); } else { playMusic(); } };
  if(audio) {
    audio.addEventListener('play', function(){ isPlaying = true; updateBtn(); });
    audio.addEventListener('pause', function(){ isPlaying = false; updateBtn(); });
    audio.addEventListener('ended', function(){ isPlaying = false; updateBtn(); });
  }
  document.body.addEventListener('click', function playMusicOnce(){
    if(audio && !isPlaying) { playMusic(); }
    document.body.removeEventListener('click', playMusicOnce);
  });
  document.addEventListener('visibilitychange', function(){
    if(document.hidden && audio && !audio.paused) { pauseMusic(); }
  });
  updateBtn();
})();</script>`
)

// AudioFragment membangun fragmen audio untuk URL musik terpilih.
// Disisipkan tepat sebelum </body> pada dokumen rakitan, bukan ditempel di
// akhir string.
func AudioFragment(url string) string {
	return audioFragmentHead + url + audioFragmentTail
}
