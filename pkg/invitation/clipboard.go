package invitation

// CopyScript skrip salin-rekening dengan event delegation di document:
// blok kado dirender dinamis, jadi listener per tombol tidak bisa diandalkan.
// Setelah berhasil menyalin, label tombol berganti "Disalin!" selama 1,2 detik
// lalu kembali ke "Salin".
const CopyScript = `<script>(function(){
  document.addEventListener('click',function(e){
    const btn = e.target.closest('.btn-copy-account');
    if(btn){
      const acc = btn.getAttribute('data-account');
      if(acc){
        navigator.clipboard.writeText(acc).then(()=>{
          const span = btn.querySelector('span');
          if(span){
            span.textContent='Disalin!';
            setTimeout(()=>{span.textContent='Salin';},1200);
          }
        });
      }
    }
  });
})();</script>`
